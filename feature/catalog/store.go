package catalog

import (
	"context"
	"errors"

	"catalog-webservice/feature/catalog/models"
)

// ErrNotFound is returned by every store when the requested entity does not exist.
var ErrNotFound = errors.New("entity not found")

// ProductStore loads and persists catalog products.
type ProductStore interface {
	// LoadBySku returns the product with its variation links, or ErrNotFound.
	LoadBySku(ctx context.Context, sku string) (*models.Product, error)
	// LoadByID returns the product without its variation links, or ErrNotFound.
	LoadByID(ctx context.Context, id uint) (*models.Product, error)
	// Save persists the product's variation link set, replacing the stored one.
	Save(ctx context.Context, product *models.Product) error
	// Size returns the number of products in the catalog.
	Size(ctx context.Context) (int64, error)
	// ListSkusByType returns the SKUs of all products of a type, sorted.
	ListSkusByType(ctx context.Context, typeID string) ([]string, error)
}

// CategoryStore loads catalog categories.
type CategoryStore interface {
	// LoadByID returns the category, or ErrNotFound.
	LoadByID(ctx context.Context, id uint) (*models.Category, error)
	// ProductCount returns the number of distinct products assigned to a category.
	ProductCount(ctx context.Context, categoryID uint) (int64, error)
}

// AttributeStore resolves configurable product attributes.
type AttributeStore interface {
	// ConfigurableAttributes returns the product's super attributes with the
	// option values used by its variations.
	ConfigurableAttributes(ctx context.Context, product *models.Product) ([]models.ConfigurableAttribute, error)
	// UsedProductAttributes returns the EAV attributes backing the super attributes.
	UsedProductAttributes(ctx context.Context, product *models.Product) ([]models.UsedAttribute, error)
}

// Stores bundles the ports the service depends on.
type Stores struct {
	Products   ProductStore
	Categories CategoryStore
	Attributes AttributeStore
}
