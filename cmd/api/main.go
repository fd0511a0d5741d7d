package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/andreigec/koppen-climate-lookup/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	app, err := NewApp(cfg, logger)
	if err != nil {
		return fmt.Errorf("build app: %w", err)
	}

	addr := cfg.GetServerAddr()
	logger.Info("serving koppen lookups", "addr", addr, "dataset_points", app.climateService.DatasetSize())
	if err := app.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	return nil
}
