package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger/cmd"
	"ledger/internal/adapters/out/postgres"
	"ledger/internal/core/domain/model/kernel"

	"github.com/labstack/gommon/log"
)

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

	app := cmd.NewCompositionRoot(configs, db, logger)

	if err = app.SeedDemo(ctx); err != nil {
		log.Fatalf("Error seeding demo data: %v", err)
	}
	if err = app.RunDemoScenario(ctx); err != nil {
		log.Fatalf("Error running demo scenario: %v", err)
	}

	// Four days ahead both demo shipments are overdue.
	asOf := kernel.Now().Add(96 * time.Hour)
	if err = app.PrintReports(ctx, os.Stdout, asOf); err != nil {
		log.Fatalf("Error printing reports: %v", err)
	}
}
