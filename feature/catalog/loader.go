package catalog

import (
	"catalog-webservice/core/messaging"
	"catalog-webservice/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	enabled bool
}

// NewFeature creates the catalog feature over a database connection.
// A nil db yields a disabled feature.
func NewFeature(db *gorm.DB, client storage.Client, bucket string, publisher messaging.Publisher, logger *zap.Logger, cfg Config) *Feature {
	var stores Stores
	if db != nil {
		stores = NewGormStores(db)
	}
	svc := NewService(stores, client, bucket, publisher, logger, cfg)
	return &Feature{
		service: svc,
		handler: NewHandler(svc),
		enabled: db != nil,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled reports whether a database is available.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service.
func (f *Feature) Service() *Service {
	return f.service
}
