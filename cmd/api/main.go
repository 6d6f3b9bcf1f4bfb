package main

import (
	"os"

	"github.com/tallerdev/admtaller/internal/pkg/logger"
	"github.com/tallerdev/admtaller/internal/server"
)

// @title AdmTaller API
// @version 1.0
// @description API for the administration of culinary workshops: subjects, workshops, products, schedules and execution records.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until SIGINT/SIGTERM or a listener error
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
