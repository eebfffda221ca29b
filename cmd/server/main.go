package main

import (
	"cpace/internal/config"
	"cpace/internal/server"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	if cfg.HFAPIToken == "" {
		logger.Warn().Msg("HF_API_TOKEN not set, completion endpoints will fail")
	}
	if cfg.CRMAPIKey == "" {
		logger.Warn().Msg("CRM_API_KEY not set, CRM endpoints will fail")
	}

	// Create and initialize server
	srv := server.New(cfg, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
