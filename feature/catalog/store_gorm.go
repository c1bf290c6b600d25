package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-webservice/feature/catalog/models"

	"gorm.io/gorm"
)

// NewGormStores returns the GORM-backed implementation of every port.
func NewGormStores(db *gorm.DB) Stores {
	return Stores{
		Products:   NewGormProductStore(db),
		Categories: NewGormCategoryStore(db),
		Attributes: NewGormAttributeStore(db),
	}
}

// notFound translates gorm's missing-record error into ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// GormProductStore implements ProductStore over catalog_product_entity.
type GormProductStore struct {
	db *gorm.DB
}

// NewGormProductStore creates a product store.
func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) load(ctx context.Context, withLinks bool, query string, arg any) (*models.Product, error) {
	var product models.Product
	tx := s.db.WithContext(ctx)
	if withLinks {
		tx = tx.Preload("Links", func(db *gorm.DB) *gorm.DB { return db.Order("link_id") })
	}
	if err := tx.Where(query, arg).First(&product).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// LoadBySku implements ProductStore.
func (s *GormProductStore) LoadBySku(ctx context.Context, sku string) (*models.Product, error) {
	return s.load(ctx, true, "sku = ?", sku)
}

// LoadByID implements ProductStore. Links are not loaded.
func (s *GormProductStore) LoadByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.load(ctx, false, "entity_id = ?", id)
}

// Save implements ProductStore. The link set is replaced in one transaction.
func (s *GormProductStore) Save(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", product.EntityID).Delete(&models.SuperLink{}).Error; err != nil {
			return fmt.Errorf("failed to clear variation links: %w", err)
		}

		if len(product.Links) > 0 {
			for i := range product.Links {
				product.Links[i].LinkID = 0
				product.Links[i].ParentID = product.EntityID
			}
			if err := tx.Create(&product.Links).Error; err != nil {
				return fmt.Errorf("failed to insert variation links: %w", err)
			}
		}

		now := time.Now()
		if err := tx.Model(&models.Product{}).
			Where("entity_id = ?", product.EntityID).
			UpdateColumn("updated_at", now).Error; err != nil {
			return fmt.Errorf("failed to touch product: %w", err)
		}
		product.UpdatedAt = now
		return nil
	})
}

// Size implements ProductStore.
func (s *GormProductStore) Size(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// ListSkusByType implements ProductStore.
func (s *GormProductStore) ListSkusByType(ctx context.Context, typeID string) ([]string, error) {
	var skus []string
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("type_id = ?", typeID).
		Order("sku").
		Pluck("sku", &skus).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s products: %w", typeID, err)
	}
	return skus, nil
}

// GormCategoryStore implements CategoryStore over catalog_category_entity.
type GormCategoryStore struct {
	db *gorm.DB
}

// NewGormCategoryStore creates a category store.
func NewGormCategoryStore(db *gorm.DB) *GormCategoryStore {
	return &GormCategoryStore{db: db}
}

// LoadByID implements CategoryStore.
func (s *GormCategoryStore) LoadByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

// ProductCount implements CategoryStore.
func (s *GormCategoryStore) ProductCount(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.CategoryProduct{}).
		Where("category_id = ?", categoryID).
		Distinct("product_id").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products of category %d: %w", categoryID, err)
	}
	return count, nil
}

// GormAttributeStore implements AttributeStore over the EAV tables.
type GormAttributeStore struct {
	db *gorm.DB
}

// NewGormAttributeStore creates an attribute store.
func NewGormAttributeStore(db *gorm.DB) *GormAttributeStore {
	return &GormAttributeStore{db: db}
}

// superAttributes loads the product's super attributes (position order) and the
// EAV attributes they reference, keyed by attribute id.
func (s *GormAttributeStore) superAttributes(ctx context.Context, productID uint) ([]models.SuperAttribute, map[uint]models.EavAttribute, error) {
	var supers []models.SuperAttribute
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("position, product_super_attribute_id").
		Find(&supers).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load super attributes: %w", err)
	}
	if len(supers) == 0 {
		return supers, map[uint]models.EavAttribute{}, nil
	}

	attrIDs := make([]uint, 0, len(supers))
	for _, sa := range supers {
		attrIDs = append(attrIDs, sa.AttributeID)
	}

	var attrs []models.EavAttribute
	if err := s.db.WithContext(ctx).Where("attribute_id IN ?", attrIDs).Find(&attrs).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to load attributes: %w", err)
	}

	byID := make(map[uint]models.EavAttribute, len(attrs))
	for _, a := range attrs {
		byID[a.AttributeID] = a
	}
	return supers, byID, nil
}

// optionRow is one option value used by at least one variation.
type optionRow struct {
	AttributeID uint
	OptionID    uint
	Label       string
	SortOrder   int
}

// ConfigurableAttributes implements AttributeStore.
func (s *GormAttributeStore) ConfigurableAttributes(ctx context.Context, product *models.Product) ([]models.ConfigurableAttribute, error) {
	supers, attrs, err := s.superAttributes(ctx, product.EntityID)
	if err != nil {
		return nil, err
	}
	result := make([]models.ConfigurableAttribute, 0, len(supers))
	if len(supers) == 0 {
		return result, nil
	}

	superIDs := make([]uint, 0, len(supers))
	attrIDs := make([]uint, 0, len(supers))
	for _, sa := range supers {
		superIDs = append(superIDs, sa.ID)
		attrIDs = append(attrIDs, sa.AttributeID)
	}

	// Admin (store 0) labels only.
	var labels []models.SuperAttributeLabel
	err = s.db.WithContext(ctx).
		Where("product_super_attribute_id IN ? AND store_id = ?", superIDs, 0).
		Find(&labels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load super attribute labels: %w", err)
	}
	labelBySuper := make(map[uint]models.SuperAttributeLabel, len(labels))
	for _, l := range labels {
		labelBySuper[l.SuperAttributeID] = l
	}

	valuesByAttr := make(map[uint][]models.AttributeValue)
	if childIDs := product.VariationIDs(); len(childIDs) > 0 {
		var rows []optionRow
		err = s.db.WithContext(ctx).
			Table("catalog_product_entity_int AS v").
			Select("v.attribute_id AS attribute_id, o.option_id AS option_id, COALESCE(ov.value, '') AS label, o.sort_order AS sort_order").
			Joins("JOIN eav_attribute_option AS o ON o.option_id = v.value AND o.attribute_id = v.attribute_id").
			Joins("LEFT JOIN eav_attribute_option_value AS ov ON ov.option_id = o.option_id AND ov.store_id = 0").
			Where("v.entity_id IN ? AND v.attribute_id IN ? AND v.store_id = 0", childIDs, attrIDs).
			Group("v.attribute_id, o.option_id, ov.value, o.sort_order").
			Order("o.sort_order, o.option_id").
			Scan(&rows).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load variation option values: %w", err)
		}
		for _, r := range rows {
			valuesByAttr[r.AttributeID] = append(valuesByAttr[r.AttributeID], models.AttributeValue{
				ValueIndex: r.OptionID,
				Label:      r.Label,
			})
		}
	}

	for _, sa := range supers {
		attr := attrs[sa.AttributeID]
		item := models.ConfigurableAttribute{
			ID:            sa.ID,
			AttributeID:   sa.AttributeID,
			AttributeCode: attr.AttributeCode,
			FrontendLabel: attr.FrontendLabel,
			Label:         attr.FrontendLabel,
			UseDefault:    true,
			Position:      sa.Position,
			Values:        valuesByAttr[sa.AttributeID],
		}
		if l, ok := labelBySuper[sa.ID]; ok {
			item.UseDefault = l.UseDefault == 1
			if !item.UseDefault && l.Value != "" {
				item.Label = l.Value
			}
		}
		if item.Values == nil {
			item.Values = []models.AttributeValue{}
		}
		result = append(result, item)
	}

	return result, nil
}

// UsedProductAttributes implements AttributeStore.
func (s *GormAttributeStore) UsedProductAttributes(ctx context.Context, product *models.Product) ([]models.UsedAttribute, error) {
	supers, attrs, err := s.superAttributes(ctx, product.EntityID)
	if err != nil {
		return nil, err
	}

	result := make([]models.UsedAttribute, 0, len(supers))
	for _, sa := range supers {
		attr, ok := attrs[sa.AttributeID]
		if !ok {
			continue
		}
		result = append(result, models.UsedAttribute{
			AttributeID:   attr.AttributeID,
			AttributeCode: attr.AttributeCode,
			FrontendLabel: attr.FrontendLabel,
			FrontendInput: attr.FrontendInput,
			BackendType:   attr.BackendType,
		})
	}
	return result, nil
}
