package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger/cmd"
	httpin "ledger/internal/adapters/in/http"
	"ledger/internal/adapters/out/postgres"

	"github.com/labstack/gommon/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	logger := configs.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, configs.Database(), logger)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err = postgres.InitSchema(ctx, db, logger); err != nil {
		log.Fatalf("Error initialising schema: %v", err)
	}

	doc, err := httpin.LoadOpenAPI(ctx)
	if err != nil {
		log.Fatalf("Error loading OpenAPI document: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	e := httpin.NewRouter(app.CreateHTTPServer(), doc, app.Registry(), logger)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if startErr := e.Start(addr); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", "error", startErr)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
