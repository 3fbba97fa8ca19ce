package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"paperhub/database"
	"paperhub/internal/config"
	"paperhub/internal/httpapi/handler"
	"paperhub/internal/httpapi/middleware"
	"paperhub/internal/httpapi/repository"
	"paperhub/internal/httpapi/service"
	"paperhub/pkg/logger"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	logger.Init(cfg.LogLevel, cfg.LogFormat)

	// 2. Connect to the database. The pgx pool backs the liveness check and
	// is non-fatal; the GORM handle backs the repositories and is required.
	ctx := context.Background()
	if err := database.Connect(ctx, cfg.DatabaseURL); err != nil {
		log.Warn().Err(err).Msg("pgx connect failed (continuing)")
	} else {
		defer database.Close()
	}

	gdb, err := database.OpenGorm(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open gorm DB")
	}

	// 3. Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())

	paperHandler := handler.NewPaperHandler(service.NewPaperService(repository.NewPaperRepo(gdb)))
	authorHandler := handler.NewAuthorHandler(service.NewAuthorService(repository.NewAuthorRepo(gdb)))

	api := r.Group("/api")
	paperHandler.RegisterRoutes(api.Group("/papers"))
	authorHandler.RegisterRoutes(api.Group("/authors"))

	r.GET("/check-conn", func(c *gin.Context) {
		if err := database.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "API is alive and database connected"})
	})

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	log.Info().Str("addr", addr).Msg("HTTP server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
