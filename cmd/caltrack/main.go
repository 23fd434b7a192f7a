package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caltrack/caltrack/config"
	"github.com/caltrack/caltrack/internal/cli"
	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/service"
	"github.com/caltrack/caltrack/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	db, err := database.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(1)
	}

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
	if err := database.SeedFoods(db); err != nil {
		log.Error().Err(err).Msg("food catalog seeding failed")
		os.Exit(1)
	}

	// Cache is optional; a missing Redis only disables it.
	cache, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		cache = nil
	}

	catalog := service.NewCatalogService(db, cache)
	intake := service.NewIntakeService(db, catalog)
	app := cli.New(cli.Deps{
		Auth:    service.NewAuthService(db, cfg.JWTSecret),
		Catalog: catalog,
		Intake:  intake,
		Weight:  service.NewWeightService(db),
		Reports: service.NewReportService(db, intake),
	}, os.Stdin, os.Stdout)

	if err := app.Run(context.Background()); err != nil {
		log.Error().Err(err).Msg("session terminated")
		os.Exit(1)
	}
}
