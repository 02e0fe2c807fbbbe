package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/florawhisper/storefront-gateway/api/routes"
	"github.com/florawhisper/storefront-gateway/internal/catalog"
	"github.com/florawhisper/storefront-gateway/internal/checkout"
	"github.com/florawhisper/storefront-gateway/internal/orders"
	"github.com/florawhisper/storefront-gateway/internal/session"
	"github.com/florawhisper/storefront-gateway/pkg/config"
	"github.com/florawhisper/storefront-gateway/pkg/flora"
	"github.com/florawhisper/storefront-gateway/pkg/logger"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
	"github.com/florawhisper/storefront-gateway/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)
	cartMetrics := metrics.NewCartMetrics(registry)
	upstreamMetrics := metrics.NewUpstreamMetrics(registry)

	upstream, err := flora.NewClient(cfg.Upstream.BaseURL,
		flora.WithTimeout(cfg.Upstream.Timeout),
		flora.WithMetrics(upstreamMetrics),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create store client", err)
		os.Exit(1)
	}

	sessions := session.NewManager(redisClient, cfg.Session.TTL(), cartMetrics)
	catalogService := catalog.NewService(upstream)
	checkoutService := checkout.NewService(upstream, cartMetrics)
	ordersService := orders.NewService(upstream)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting storefront gateway")

	go func() {
		ticker := time.NewTicker(cfg.Session.TTL())
		defer ticker.Stop()
		for range ticker.C {
			if dropped := sessions.PruneIdle(cfg.Session.TTL()); dropped > 0 {
				logg.Info(logg.WithFields(context.Background(), map[string]any{
					"carts": dropped,
				}), "pruned idle carts")
			}
		}
	}()

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			Sessions:    sessions,
			SessionPing: redisClient,
			Upstream:    upstream,
			Catalog:     catalogService,
			Checkout:    checkoutService,
			Orders:      ordersService,
			HTTPMetrics: httpMetrics,
			CartMetrics: cartMetrics,
			MetricsPage: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "gateway stopped unexpectedly", err)
		os.Exit(1)
	}
}
