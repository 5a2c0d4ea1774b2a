package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/patomosley/barbar-shop/internal/backend"
	"github.com/patomosley/barbar-shop/internal/config"
	"github.com/patomosley/barbar-shop/internal/logging"
	"github.com/patomosley/barbar-shop/internal/metrics"
	"github.com/patomosley/barbar-shop/internal/middleware"
	"github.com/patomosley/barbar-shop/internal/notify"
	"github.com/patomosley/barbar-shop/internal/routes"
	"github.com/patomosley/barbar-shop/internal/session"
	"github.com/patomosley/barbar-shop/internal/view"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg)

	redisClient := session.NewRedisClient(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := session.Ping(ctx, redisClient); err != nil {
		logger.Fatal().Err(err).Msg("redis connection failed")
	}

	metrics.Register()

	api := backend.New(cfg.BackendURL)
	sessions := session.NewStore(redisClient, session.DefaultTTL)
	flashes := notify.NewStore(redisClient, session.DefaultTTL)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))
	r.Use(middleware.Metrics())

	r.SetHTMLTemplate(view.Templates())
	r.Static("/static", "./static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, api, sessions, flashes, cfg.SessionSecret, logger)

	logger.Info().Str("addr", cfg.Addr()).Str("backend", cfg.BackendURL).Msg("starting admin console")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
