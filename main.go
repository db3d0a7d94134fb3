package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"weather-backend/config"
	"weather-backend/db"
	"weather-backend/httpapi"
	"weather-backend/logging"
	"weather-backend/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store := db.New(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket, logger)
	defer store.Close()

	svc := weather.NewService(store, cfg.DefaultDays, logger)
	srv := httpapi.New(cfg, svc)
	logger.Info("REST API listening", "addr", cfg.ListenAddr())

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
