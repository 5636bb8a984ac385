package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frete-service/internal/core/cache"
	"frete-service/internal/core/config"
	"frete-service/internal/core/logger"
	"frete-service/internal/core/server"
	"frete-service/internal/features/shipping/adapters"
	"frete-service/internal/features/shipping/domain"
	"frete-service/internal/features/shipping/handler"
	"frete-service/internal/features/shipping/ports"
	"frete-service/internal/features/shipping/service"

	"go.uber.org/zap"
)

// @title Frete Service API
// @version 1.0
// @description This API computes shipping options (Econômico, Padrão, Expresso) for a storefront cart and a Brazilian destination state.
// @contact.name API Support
// @contact.email suporte@frete-service.com.br
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	l := logger.Get()
	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
	)

	// Rate table: built-in values, optionally overridden per region from a YAML file
	var ratesFile *config.RatesFile
	if cfg.Shipping.RatesFile != "" {
		ratesFile, err = config.LoadRates(cfg.Shipping.RatesFile)
		if err != nil {
			l.Fatal("Failed to load rate table", zap.String("file", cfg.Shipping.RatesFile), zap.Error(err))
		}
		l.Info("Rate table override loaded", zap.String("file", cfg.Shipping.RatesFile))
	}

	rates, err := service.BuildRateTable(ratesFile)
	if err != nil {
		l.Fatal("Invalid rate table", zap.Error(err))
	}

	engine, err := domain.NewRateEngine(rates, domain.WithFreeExpress(cfg.Shipping.FreeExpress))
	if err != nil {
		l.Fatal("Failed to build rate engine", zap.Error(err))
	}

	// Weight sources, consulted in order after the override store
	var sources []ports.WeightSource
	if cfg.Catalog.URL != "" {
		catalog := adapters.NewStorefrontCatalogAdapter(cfg.Catalog)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := catalog.HealthCheck(ctx); err != nil {
			// The catalog is optional; quotes fall through to the built-in table.
			l.Warn("Catalog Health Check Failed", zap.Error(err))
		} else {
			l.Info("Catalog connection verified")
		}
		cancel()
		sources = append(sources, catalog)
	}
	sources = append(sources, adapters.NewTableWeightSource(domain.DefaultWeightTable()))

	var opts []service.Option
	if cfg.Redis.Enabled() {
		redisCache, err := cache.NewRedisAdapter(cfg.Redis.URL)
		if err != nil {
			l.Fatal("Failed to create Redis client", zap.Error(err))
		}
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			cancel()
			l.Fatal("Redis Health Check Failed", zap.Error(err))
		}
		cancel()
		l.Info("Redis connection verified")

		// Restarting with other rates or policy must not serve quotes priced by the old ones.
		namespace := "v1-" + engine.Fingerprint()
		opts = append(opts,
			service.WithWeightStore(adapters.NewRedisWeightRepository(redisCache)),
			service.WithQuoteCache(
				adapters.NewRedisQuoteCache(redisCache, namespace),
				time.Duration(cfg.Shipping.QuoteCacheTTL)*time.Second,
			),
		)
	} else {
		l.Info("REDIS_URL not set, weight overrides and quote caching disabled")
	}

	shippingSvc := service.NewShippingService(engine, sources, opts...)
	shippingHdl := handler.NewShippingHandler(shippingSvc)

	srv := server.New(cfg)

	// Register Routes
	shippingHdl.Register(srv.App)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		if err := srv.Shutdown(); err != nil {
			l.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	if err := srv.Run(); err != nil {
		l.Fatal("Server failed to start", zap.Error(err))
	}
}
