package main

import (
	"context"
	"log"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/jdramirez/facturas-api/docs"
	"github.com/jdramirez/facturas-api/internal/config"
	"github.com/jdramirez/facturas-api/internal/database"
	"github.com/jdramirez/facturas-api/internal/handler"
	"github.com/jdramirez/facturas-api/internal/repository"
	"github.com/jdramirez/facturas-api/internal/server"
	"github.com/jdramirez/facturas-api/internal/service"
)

func init() {
	// Montos travel as plain JSON numbers, matching the documented response
	// shape.
	decimal.MarshalJSONWithoutQuotes = true
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// The store is injected: Postgres when a URL is configured, otherwise
	// the seeded in-memory repository.
	var repo repository.FacturaRepository
	if cfg.PostgresDBURL != "" {
		db, err := database.NewPostgresDB(context.Background(), cfg.PostgresDBURL)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		repo = repository.NewPostgresFacturaRepository(db.GetPool())
		logger.Info("using PostgreSQL factura repository")
	} else {
		repo = repository.NewMemoryFacturaRepository()
		logger.Info("using in-memory factura repository")
	}

	facturaService := service.NewFacturaService(repo, logger)
	facturaHandler := handler.NewFacturaHandler(facturaService, logger)

	appServer := server.NewServer(cfg, facturaHandler, logger)
	if err := appServer.Start(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newLogger builds a production zap logger at the configured level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}
