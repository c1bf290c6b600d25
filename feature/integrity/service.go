package integrity

import (
	"context"
	"fmt"

	"catalog-webservice/core/storage"
	"catalog-webservice/feature/catalog/models"
	"catalog-webservice/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	region  string
	folders []string
	logger  *zap.Logger
	db      *gorm.DB
}

// NewService creates a new integrity service. folders are the storage prefixes
// that must exist in the bucket.
func NewService(client storage.Client, bucket, region string, folders []string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		folders: folders,
		logger:  logger,
		db:      db,
	}
}

// CheckSchema verifies the catalog tables against the models the service uses.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, models.All())
}

// CheckStorage reports the bucket and missing folders.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, s.folders)
}

// FixStorage creates what the report lists as missing.
func (s *Service) FixStorage(ctx context.Context, report *checks.StorageReport) error {
	return checks.FixStorage(ctx, s.client, report, s.region, s.logger)
}
