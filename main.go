// @title Agency Contact API
// @version 1.0
// @description Receives project inquiries from the studio website and relays them to the studio inbox.
// @BasePath /
package main

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/knowgrow/agency-backend/config"
	_ "github.com/knowgrow/agency-backend/docs"
	"github.com/knowgrow/agency-backend/handlers"
	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/router"
	"github.com/knowgrow/agency-backend/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis backs the optional rate limiter and duplicate guard.
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisOptions := &redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		if cfg.Redis.UseTLS {
			redisOptions.TLSConfig = &tls.Config{
				MinVersion: tls.VersionTLS12,
			}
		}
		redisClient = redis.NewClient(redisOptions)
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warnw("Redis is not reachable at startup; optional features will fail open", "error", err)
		}
		cancel()
	}

	// Initialize services
	mailer, err := services.NewMailer(&cfg.Email)
	if err != nil {
		log.Fatalf("Failed to create email provider client: %v", err)
	}
	emailService := services.NewEmailService(&cfg.Email, mailer)

	var dedup services.Deduplicator
	if cfg.Dedup.Enabled {
		dedup = services.NewDedupService(redisClient, time.Duration(cfg.Dedup.TTLSeconds)*time.Second)
	}

	contactService := services.NewContactService(
		services.NewInquiryValidator(cfg.Contact.ValidateEmailFormat),
		emailService,
		dedup,
		prometheus.DefaultRegisterer,
	)
	healthService := services.NewHealthService(redisClient, mailer, cfg.Server.Version)

	var rateLimiter services.RateLimiterInterface
	if cfg.RateLimit.Enabled {
		rateLimiter = services.NewRateLimitService(redisClient)
	}

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		ContactHandler: handlers.NewContactHandler(contactService, cfg.Contact.MaxBodyBytes),
		HealthHandler:  handlers.NewHealthHandler(healthService),
		RateLimiter:    rateLimiter,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}

	log.Info("Server exiting")
}
