package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gmoreira/marketpulse/config"
	"github.com/gmoreira/marketpulse/internal/api"
	"github.com/gmoreira/marketpulse/internal/service"
	"github.com/gmoreira/marketpulse/internal/storage"
)

// InitializeApp wires all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and
// any initialization error.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewMarketRepository(db)
	svc := service.NewMarketService(repo)
	handler := api.NewHandler(svc)
	diag := api.NewDiagnosticsHandler(db.Ping, repo)

	router := api.NewRouter(handler, diag)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
