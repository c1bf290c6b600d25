package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-webservice/core/cache"
	"catalog-webservice/core/messaging"
	"catalog-webservice/core/storage"
	"catalog-webservice/feature/catalog/models"

	"go.uber.org/zap"
)

const (
	productCountKey  = "products"
	categoryCountKey = "category:%d"

	countLoadTimeout = 30 * time.Second
)

// Repository is the catalog web service contract.
type Repository interface {
	GetCatalogProductCount(ctx context.Context) (int64, error)
	GetCategoryProductCount(ctx context.Context, categoryID int) (int64, error)
	GetConfigurableAttributes(ctx context.Context, sku string) (*AttributesResult, error)
	GetUsedProductAttributes(ctx context.Context, sku string) (*UsedAttributesResult, error)
	GetConfigurableVariations(ctx context.Context, sku string) (*ReconciliationResult, error)
	SetConfigurableVariations(ctx context.Context, sku string, variationSkus []string) (*ReconciliationResult, error)
}

var _ Repository = (*Service)(nil)

// AttributesResult is the configurable attributes of a product, or an error
// message when the product does not exist.
type AttributesResult struct {
	Error      string                         `json:"error,omitempty"`
	Attributes []models.ConfigurableAttribute `json:"attributes,omitempty"`
}

// UsedAttributesResult is the used attributes of a product, or an error
// message when the product does not exist.
type UsedAttributesResult struct {
	Error      string                 `json:"error,omitempty"`
	Attributes []models.UsedAttribute `json:"attributes,omitempty"`
}

// Service handles catalog operations.
type Service struct {
	stores     Stores
	reconciler *VariationReconciler
	counts     *cache.Store
	client     storage.Client
	bucket     string
	publisher  messaging.Publisher
	logger     *zap.Logger
	cfg        Config
}

// NewService creates a new catalog service. A nil publisher disables events.
func NewService(stores Stores, client storage.Client, bucket string, publisher messaging.Publisher, logger *zap.Logger, cfg Config) *Service {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		stores:     stores,
		reconciler: NewVariationReconciler(stores.Products, logger),
		counts:     cache.New(cfg.CountCacheTTL()),
		client:     client,
		bucket:     bucket,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// countContext detaches a count load from the caller's cancellation. Loads are
// shared between concurrent callers, so one caller going away must not fail the rest.
func countContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), countLoadTimeout)
}

// GetCatalogProductCount returns the number of products in the catalog.
func (s *Service) GetCatalogProductCount(ctx context.Context) (int64, error) {
	v, err := s.counts.GetOrLoad(productCountKey, func() (any, error) {
		loadCtx, cancel := countContext(ctx)
		defer cancel()
		return s.stores.Products.Size(loadCtx)
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// GetCategoryProductCount returns the number of products in a category, or 0
// when the category does not exist.
func (s *Service) GetCategoryProductCount(ctx context.Context, categoryID int) (int64, error) {
	if categoryID <= 0 {
		return 0, nil
	}
	id := uint(categoryID)

	v, err := s.counts.GetOrLoad(fmt.Sprintf(categoryCountKey, id), func() (any, error) {
		loadCtx, cancel := countContext(ctx)
		defer cancel()
		if _, err := s.stores.Categories.LoadByID(loadCtx, id); err != nil {
			if errors.Is(err, ErrNotFound) {
				return int64(0), nil
			}
			return nil, fmt.Errorf("failed to load category %d: %w", id, err)
		}
		return s.stores.Categories.ProductCount(loadCtx, id)
	})
	if err != nil {
		return 0, err
	}
	return v.(int64), nil
}

// GetConfigurableAttributes returns the attributes a configurable product varies on.
func (s *Service) GetConfigurableAttributes(ctx context.Context, sku string) (*AttributesResult, error) {
	product, err := s.stores.Products.LoadBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &AttributesResult{Error: fmt.Sprintf(MsgProductNotFound, sku)}, nil
		}
		return nil, fmt.Errorf("failed to load product %q: %w", sku, err)
	}

	attrs, err := s.stores.Attributes.ConfigurableAttributes(ctx, product)
	if err != nil {
		return nil, err
	}
	return &AttributesResult{Attributes: attrs}, nil
}

// GetUsedProductAttributes returns the EAV attributes backing a configurable product.
func (s *Service) GetUsedProductAttributes(ctx context.Context, sku string) (*UsedAttributesResult, error) {
	product, err := s.stores.Products.LoadBySku(ctx, sku)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &UsedAttributesResult{Error: fmt.Sprintf(MsgProductNotFound, sku)}, nil
		}
		return nil, fmt.Errorf("failed to load product %q: %w", sku, err)
	}

	attrs, err := s.stores.Attributes.UsedProductAttributes(ctx, product)
	if err != nil {
		return nil, err
	}
	return &UsedAttributesResult{Attributes: attrs}, nil
}

// GetConfigurableVariations returns the SKUs linked to a configurable product.
func (s *Service) GetConfigurableVariations(ctx context.Context, sku string) (*ReconciliationResult, error) {
	return s.reconciler.GetVariations(ctx, sku)
}

// SetConfigurableVariations replaces the variations of a configurable product
// and publishes a VariationsAssigned event on success.
func (s *Service) SetConfigurableVariations(ctx context.Context, sku string, variationSkus []string) (*ReconciliationResult, error) {
	result, err := s.reconciler.SetVariations(ctx, sku, variationSkus)
	if err != nil {
		return nil, err
	}
	if !result.IsSuccess() {
		return result, nil
	}

	if err := s.publisher.Publish(ctx, sku, newVariationsAssigned(sku, result)); err != nil {
		s.logger.Error("Failed to publish variations event",
			zap.String("sku", sku),
			zap.Error(err))
	}
	return result, nil
}
