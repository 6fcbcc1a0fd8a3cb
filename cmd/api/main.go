package main

import (
	"os"

	"github.com/classtap/classtap/internal/pkg/logger"
	"github.com/classtap/classtap/internal/server"
)

// @title ClassTap API
// @version 1.0
// @description NFC attendance tracking backend for classrooms. Students tap a registered card to be marked present for a class session; scans are idempotent per student and session.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// The default logger from the logger package's init is enough here
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
