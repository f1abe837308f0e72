package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	redis_cache "blog-post-service/internal/cache/redis"
	"blog-post-service/internal/config"
	"blog-post-service/internal/database"
	delivery_http "blog-post-service/internal/delivery/http"
	admin_http "blog-post-service/internal/delivery/http/admin"
	post_http "blog-post-service/internal/delivery/http/post"
	metrics_server "blog-post-service/internal/delivery/metrics"
	"blog-post-service/internal/logger"
	prometheus_metrics "blog-post-service/internal/metrics/prometheus"
	post_postgres "blog-post-service/internal/repository/post/postgres"
	admin_service "blog-post-service/internal/service/admin"
	post_service "blog-post-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := database.RunMigrations(cfg.Database.URI, cfg.Database.MigrationsPath, log); err != nil {
		log.Error("Failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := database.NewPool(ctx, cfg.Database.URI, log)
	if err != nil {
		log.Error("Failed to connect to postgres", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	listCache := redis_cache.NewListCache(redisClient, log)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)

	originalPostService := post_service.NewPostService(postRepo, log, metrics)
	postService := post_service.NewPostServiceCacheDecorator(originalPostService, listCache, log, metrics)

	adminService := admin_service.NewAdminService(cfg.Auth.AdminKey, cfg.Auth.JWTSecret, log, metrics)

	postAPI := post_http.NewPostHTTPService(postService, log)
	adminAPI := admin_http.NewAdminHTTPService(adminService, cfg.Auth.CookieName, cfg.Env == "prod", log)

	httpServer := delivery_http.NewServer(
		postAPI,
		adminAPI,
		[]byte(cfg.Auth.JWTSecret),
		cfg.Auth.CookieName,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		pool,
		log,
		metrics,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}
