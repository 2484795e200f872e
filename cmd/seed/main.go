package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/agenthands/praline/internal/config"
	"github.com/agenthands/praline/internal/driver"
)

// Populates the graph store with the starter dataset. Safe to run
// repeatedly: everything is MERGE-based.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using environment as-is")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	d, err := driver.NewNeo4jDriver(cfg.Graph.URI, cfg.Graph.User, cfg.Graph.Password)
	if err != nil {
		log.Fatal().Err(err).Str("uri", cfg.Graph.URI).Msg("failed to connect to graph store")
	}

	ctx := context.Background()
	defer d.Close(ctx)

	if err := d.SetupSchema(ctx); err != nil {
		log.Warn().Err(err).Msg("schema setup incomplete")
	}

	if err := driver.Seed(ctx, d); err != nil {
		log.Fatal().Err(err).Msg("seeding finished with errors")
	}

	result, err := d.ExecuteQuery(ctx, driver.NodeCountsQuery, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to verify seeded data")
	}
	for label, count := range driver.CollectCounts(result, "label", "count") {
		log.Info().Str("label", label).Int64("count", count).Msg("seeded")
	}
	log.Info().Msg("seeding complete")
}
