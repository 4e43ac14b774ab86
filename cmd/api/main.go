package main

import (
	"os"

	"github.com/edudata/scedapi/internal/pkg/logger"
	"github.com/edudata/scedapi/internal/server"
)

// @title SCED Course API
// @version 1.0
// @description REST API for School Codes for the Exchange of Data (SCED) course codes and teacher certification area mappings

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
