package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "dealerreview/docs" // swagger docs

	"dealerreview/internal/auth"
	"dealerreview/internal/cache"
	"dealerreview/internal/config"
	"dealerreview/internal/db"
	"dealerreview/internal/handler"
	"dealerreview/internal/logger"
	"dealerreview/internal/metrics"
	"dealerreview/internal/model"
	"dealerreview/internal/repository"
	"dealerreview/internal/router"
	"dealerreview/internal/service"
	"dealerreview/internal/upstream"
)

const shutdownTimeout = 10 * time.Second

// @title Dealer Review API
// @version 1.0
// @description Backend for the car dealership review portal: dealer and review proxy, car catalog and session login.
// @host localhost:8000
// @BasePath /djangoapp
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()
	for _, w := range cfg.Warnings {
		log.Warning("config", logger.String("warning", w))
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Error("database init", logger.Error(err))
		os.Exit(1)
	}

	if cfg.ResetDB {
		log.Warning("RESET_DB=true detected, dropping all tables")
		tables := []interface{}{
			&model.CarModel{},
			&model.CarMake{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Warning("failed to drop table (may not exist)", logger.Error(err))
			}
		}
	}

	if err := gormDB.AutoMigrate(
		&model.CarMake{},
		&model.CarModel{},
		&model.User{},
	); err != nil {
		log.Error("auto-migrate", logger.Error(err))
		os.Exit(1)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.ServiceName+":")
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Warning("redis unreachable, logins will fail until it recovers", logger.Error(err))
	}
	cancelPing()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New("dealerreview", registry)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	catalogRepo := repository.NewCatalogRepository(gormDB)

	// Initialize auth components
	tokens := auth.NewSessionTokenService(cfg.SessionSecret, cfg.SessionTTL)
	sessions := auth.NewSessionStore(cacheClient)

	gateway := upstream.NewClient(upstream.Config{
		DealerBaseURL:    cfg.DealerServiceURL,
		SentimentBaseURL: cfg.SentimentServiceURL,
		Timeout:          cfg.UpstreamTimeout,
	}, log, appMetrics)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokens, sessions, log)
	dealerService := service.NewDealerService(gateway, log)
	catalogService := service.NewCatalogService(catalogRepo, log)

	e := echo.New()
	e.HideBanner = true

	router.Register(e, cfg, router.Deps{
		Logger:         log,
		Metrics:        appMetrics,
		Gatherer:       registry,
		Tokens:         tokens,
		AuthService:    authService,
		AuthHandler:    handler.NewAuthHandler(authService, cfg.SecureCookies, log),
		DealerHandler:  handler.NewDealerHandler(dealerService),
		ReviewHandler:  handler.NewReviewHandler(dealerService),
		CatalogHandler: handler.NewCatalogHandler(catalogService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	log.Info("swagger documentation available", logger.String("url", "http://"+swaggerHost+"/swagger/index.html"))

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info("server starting", logger.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server start", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("server shutdown", logger.Error(err))
	}
	log.Info("server stopped")
}
