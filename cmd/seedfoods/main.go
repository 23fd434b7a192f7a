// Command seedfoods loads the starter food catalog into the database.
// Safe to run repeatedly; seeding is skipped when foods already exist.
package main

import (
	"fmt"
	"os"

	"github.com/caltrack/caltrack/config"
	"github.com/caltrack/caltrack/internal/database"
	"github.com/caltrack/caltrack/internal/models"
	"github.com/caltrack/caltrack/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	db, err := database.New(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		os.Exit(1)
	}

	if err := database.SeedFoods(db); err != nil {
		log.Error().Err(err).Msg("seeding failed")
		os.Exit(1)
	}

	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		log.Error().Err(err).Msg("failed to count foods")
		os.Exit(1)
	}
	log.Info().Int64("foods", count).Msg("food catalog ready")
}
