package mocks

import (
	"context"

	"catalog-webservice/feature/catalog/models"

	"github.com/stretchr/testify/mock"
)

// ProductStore is a mock implementation of catalog.ProductStore
type ProductStore struct {
	mock.Mock
}

func (m *ProductStore) LoadBySku(ctx context.Context, sku string) (*models.Product, error) {
	args := m.Called(ctx, sku)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductStore) LoadByID(ctx context.Context, id uint) (*models.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductStore) Save(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductStore) Size(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductStore) ListSkusByType(ctx context.Context, typeID string) ([]string, error) {
	args := m.Called(ctx, typeID)
	if s := args.Get(0); s != nil {
		return s.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

// CategoryStore is a mock implementation of catalog.CategoryStore
type CategoryStore struct {
	mock.Mock
}

func (m *CategoryStore) LoadByID(ctx context.Context, id uint) (*models.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryStore) ProductCount(ctx context.Context, categoryID uint) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

// AttributeStore is a mock implementation of catalog.AttributeStore
type AttributeStore struct {
	mock.Mock
}

func (m *AttributeStore) ConfigurableAttributes(ctx context.Context, product *models.Product) ([]models.ConfigurableAttribute, error) {
	args := m.Called(ctx, product)
	if a := args.Get(0); a != nil {
		return a.([]models.ConfigurableAttribute), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AttributeStore) UsedProductAttributes(ctx context.Context, product *models.Product) ([]models.UsedAttribute, error) {
	args := m.Called(ctx, product)
	if a := args.Get(0); a != nil {
		return a.([]models.UsedAttribute), args.Error(1)
	}
	return nil, args.Error(1)
}
