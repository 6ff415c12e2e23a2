package app

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/krishayk/calendar-backend/internal/auth/handler"
	"github.com/krishayk/calendar-backend/internal/auth/provider/google"
	"github.com/krishayk/calendar-backend/internal/booking"
	"github.com/krishayk/calendar-backend/internal/calendar"
	"github.com/krishayk/calendar-backend/internal/config"
	"github.com/krishayk/calendar-backend/internal/logger"
	"github.com/krishayk/calendar-backend/internal/middleware"
)

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	sessionStore, cleanup, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	googleProvider, err := google.New(
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURI,
	)
	if err != nil {
		return nil, nil, err
	}

	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET not set, session cookies are unsigned", nil)
	}

	authHandler := handler.NewHandler(
		googleProvider,
		sessionStore,
		cfg.SessionSecret,
		cfg.FrontendOrigin,
	)

	authMiddleware := middleware.NewAuthMiddleware(sessionStore, cfg.SessionSecret)

	bookingHandler := booking.NewHandler(booking.NewMemoryStore())

	calendarHandler := calendar.NewHandler(
		calendar.NewGoogleInserter(googleProvider.OAuthConfig()),
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(cfg),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)
	bookingHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected Calendar Routes
	// ----------------------------

	api := router.Group("/api")
	api.Use(middleware.GinRequireAuth(authMiddleware))

	calendarHandler.RegisterRoutes(api)

	return router, cleanup, nil
}

func allowedOrigins(cfg config.Config) []string {
	origins := []string{"http://localhost:5173"}
	if cfg.FrontendOrigin != "" && cfg.FrontendOrigin != origins[0] {
		origins = append([]string{cfg.FrontendOrigin}, origins...)
	}
	return origins
}
