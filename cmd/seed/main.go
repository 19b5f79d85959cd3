package main

import (
	"context"
	"flag"
	"os"

	"dealerreview/internal/config"
	"dealerreview/internal/db"
	"dealerreview/internal/logger"
	"dealerreview/internal/model"
	"dealerreview/internal/repository"
)

func main() {
	file := flag.String("file", "", "JSON catalog to load instead of the built-in one")
	reset := flag.Bool("reset", false, "delete every make (and its models) before seeding")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.ServiceName+"-seed", cfg.LoggerLevel)
	defer func() { _ = log.Sync() }()

	log.Info("starting seed script")

	catalog := defaultCatalog
	if *file != "" {
		loaded, err := loadCatalog(*file)
		if err != nil {
			log.Error("failed to load catalog file", logger.String("file", *file), logger.Error(err))
			os.Exit(1)
		}
		catalog = loaded
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Error("failed to connect to database", logger.Error(err))
		os.Exit(1)
	}

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.CarMake{}, &model.CarModel{}); err != nil {
		log.Error("failed to run migrations", logger.Error(err))
		os.Exit(1)
	}

	repo := repository.NewCatalogRepository(gormDB)
	ctx := context.Background()

	if *reset {
		removed, err := resetCatalog(ctx, repo)
		if err != nil {
			log.Error("failed to reset catalog", logger.Error(err))
			os.Exit(1)
		}
		log.Info("catalog reset", logger.Int("makes_removed", removed))
	}

	stats, err := seedCatalog(ctx, repo, catalog)
	if err != nil {
		log.Error("seeding failed", logger.Error(err))
		os.Exit(1)
	}

	log.Info("seed completed",
		logger.Int("makes_created", stats.MakesCreated),
		logger.Int("makes_skipped", stats.MakesSkipped),
		logger.Int("models_created", stats.ModelsCreated),
	)
}
