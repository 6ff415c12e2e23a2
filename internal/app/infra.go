package app

import (
	"github.com/krishayk/calendar-backend/internal/config"
	"github.com/krishayk/calendar-backend/internal/logger"
	"github.com/krishayk/calendar-backend/internal/redis"
	"github.com/krishayk/calendar-backend/internal/session"
)

// setupInfra selects the session store. Redis when configured, so
// tokens survive restarts; process-local otherwise.
func setupInfra(cfg config.Config) (session.Store, func() error, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory session store", nil)
		return session.NewMemoryStore(), nil, nil
	}

	client, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("redis session store ready", map[string]any{
		"addr": cfg.RedisAddr,
	})

	return session.NewRedisStore(client.Client), client.Close, nil
}
