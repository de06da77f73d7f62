package main

import (
	"os"

	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
	"github.com/teczka-budowlanca/backend/internal/server"
)

// @title Teczka Budowlanca API
// @version 1.0
// @description Backend API for tracking construction and renovation projects

// @contact.name API Support
// @contact.email support@teczka-budowlanca.pl

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Provider-issued JWT, sent as "Bearer <token>"

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
