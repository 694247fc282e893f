package main

//
//  @title           marketpulse API
//  @version         1.0
//  @description     Stock market star-schema ingestion & retrieval service.
//  @termsOfService  https://github.com/gmoreira/marketpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/gmoreira/marketpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        market
//  @tag.description Endpoints for querying market and single-stock data
//
//  @tag.name        diagnostics
//  @tag.description Welcome route and database table listing
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gmoreira/marketpulse/config"
	_ "github.com/gmoreira/marketpulse/docs" // swagger docs
	"github.com/gmoreira/marketpulse/internal/app"
	"github.com/gmoreira/marketpulse/internal/ingestion"
	"github.com/gmoreira/marketpulse/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate
// goroutine and returns the server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown terminates the HTTP server and runs the cleanup
// callback when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the marketpulse application.
//
// Modes (selected via --mode flag):
//   - ingest: Loads daily snapshot .csv files from ./data/input/ into
//     the star schema.
//   - api:    Starts the REST API exposing market and stock data.
//
// Flags:
//   - --mode: Execution mode ("ingest" or "api"). Default: "api".
//   - --dir:  Directory containing .csv snapshot files. Default: "./data/input".
//   - --port: Port for the API server. Defaults to config (SERVER_PORT).
func main() {
	ctx := context.Background()

	config.LoadConfig()

	logger.Init()

	mode := flag.String("mode", "api", "Mode: ingest or api")
	dir := flag.String("dir", "./data/input", "Directory with .csv snapshot files")
	days := flag.Int("days", 7, "Number of last trading days to ingest (1-7)")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Reload days even if already ingested (deletes existing metrics for that day)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "ingest":
		logger.L().Info().Msg("running snapshot ingestion")
		if *days < 1 {
			*days = 1
		}
		if *days > 7 {
			*days = 7
		}

		db, err := app.InitPostgres(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		if err := ingestion.ProcessDirectory(ctx, *dir, db, *days, *parallel, *force); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
