package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"catalog-webservice/core/config"
	"catalog-webservice/core/database"
	"catalog-webservice/core/logger"
	"catalog-webservice/core/messaging"
	"catalog-webservice/core/storage"
	"catalog-webservice/feature/catalog"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env holds the infrastructure shared by every command.
type env struct {
	cfg       *config.Config
	logger    *zap.Logger
	db        *gorm.DB
	storage   storage.Client
	publisher messaging.Publisher
}

// bootstrap loads configuration and connects the infrastructure. With
// requireDB a failed database connection is an error, otherwise it is logged
// and the command runs without one.
func bootstrap(requireDB bool) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	e := &env{cfg: cfg, logger: logg}

	if conn, err := database.Connect(cfg.Database); err != nil {
		if requireDB {
			return nil, fmt.Errorf("database connection required: %w", err)
		}
		logg.Warn("Optional database connection failed", zap.Error(err))
	} else {
		e.db = conn
		logg.Info("Connected to catalog database",
			zap.String("driver", cfg.Database.Driver),
			zap.String("database", cfg.Database.Name))
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage client unavailable", zap.Error(err))
	} else {
		e.storage = store
	}

	e.publisher = messaging.NewPublisher(cfg.Events)
	return e, nil
}

// catalogService builds the catalog service over the connected database.
func (e *env) catalogService() *catalog.Service {
	return catalog.NewService(catalog.NewGormStores(e.db), e.storage, e.cfg.Storage.Bucket, e.publisher, e.logger, e.cfg.Catalog)
}

// Close releases the publisher and flushes the logger.
func (e *env) Close() {
	if err := e.publisher.Close(); err != nil {
		e.logger.Warn("Failed to close event publisher", zap.Error(err))
	}
	_ = e.logger.Sync()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
