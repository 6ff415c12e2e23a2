package config

import (
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "4000"

type Config struct {
	Port string

	SessionSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURI  string

	FrontendOrigin string

	RedisAddr     string
	RedisPassword string
}

func Load() Config {
	// Local development convenience; missing .env is not an error.
	_ = godotenv.Load()

	cfg := Config{

		Port: os.Getenv("PORT"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURI:  os.Getenv("GOOGLE_REDIRECT_URI"),

		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "http://localhost:5173"
	}

	return cfg
}
