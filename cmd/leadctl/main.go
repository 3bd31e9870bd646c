package main

import (
	"os"

	"github.com/Hamidziya/crm-edfront/internal/api"
	"github.com/Hamidziya/crm-edfront/internal/cli"
	"github.com/Hamidziya/crm-edfront/internal/config"
	"github.com/Hamidziya/crm-edfront/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "pretty")
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	// Initialize API client
	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)

	root := cli.NewRootCmd(cfg, log, client)
	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
