package models

import "time"

// Product type identifiers stored in catalog_product_entity.type_id.
const (
	TypeSimple       = "simple"
	TypeConfigurable = "configurable"
)

// Product represents the 'catalog_product_entity' table.
type Product struct {
	EntityID       uint      `gorm:"column:entity_id;primaryKey;autoIncrement"`
	AttributeSetID uint      `gorm:"column:attribute_set_id"`
	TypeID         string    `gorm:"column:type_id;type:varchar(32)"`
	Sku            string    `gorm:"column:sku;type:varchar(64);uniqueIndex"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`

	// Links are the configurable product's variation links (empty for simple products).
	Links []SuperLink `gorm:"foreignKey:ParentID;references:EntityID"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "catalog_product_entity"
}

// IsConfigurable reports whether the product carries variation links.
func (p Product) IsConfigurable() bool {
	return p.TypeID == TypeConfigurable
}

// VariationIDs returns the linked simple product ids in link order.
func (p Product) VariationIDs() []uint {
	ids := make([]uint, 0, len(p.Links))
	for _, l := range p.Links {
		ids = append(ids, l.ProductID)
	}
	return ids
}

// SetVariationIDs replaces the variation links. Duplicate ids are collapsed.
func (p *Product) SetVariationIDs(ids []uint) {
	seen := make(map[uint]struct{}, len(ids))
	links := make([]SuperLink, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		links = append(links, SuperLink{ProductID: id, ParentID: p.EntityID})
	}
	p.Links = links
}

// SuperLink represents the 'catalog_product_super_link' table:
// one row per (configurable parent, simple child) pair.
type SuperLink struct {
	LinkID    uint `gorm:"column:link_id;primaryKey;autoIncrement"`
	ProductID uint `gorm:"column:product_id;index"`
	ParentID  uint `gorm:"column:parent_id;index"`
}

// TableName overrides the table name.
func (SuperLink) TableName() string {
	return "catalog_product_super_link"
}

// SuperAttribute represents the 'catalog_product_super_attribute' table:
// the attributes a configurable product varies on.
type SuperAttribute struct {
	ID          uint `gorm:"column:product_super_attribute_id;primaryKey;autoIncrement"`
	ProductID   uint `gorm:"column:product_id;index"`
	AttributeID uint `gorm:"column:attribute_id"`
	Position    int  `gorm:"column:position"`
}

// TableName overrides the table name.
func (SuperAttribute) TableName() string {
	return "catalog_product_super_attribute"
}

// SuperAttributeLabel represents the 'catalog_product_super_attribute_label' table.
type SuperAttributeLabel struct {
	ValueID          uint   `gorm:"column:value_id;primaryKey;autoIncrement"`
	SuperAttributeID uint   `gorm:"column:product_super_attribute_id;index"`
	StoreID          uint   `gorm:"column:store_id"`
	UseDefault       int    `gorm:"column:use_default"` // tinyint(1)
	Value            string `gorm:"column:value;type:varchar(255)"`
}

// TableName overrides the table name.
func (SuperAttributeLabel) TableName() string {
	return "catalog_product_super_attribute_label"
}

// EavAttribute represents the 'eav_attribute' table.
type EavAttribute struct {
	AttributeID   uint   `gorm:"column:attribute_id;primaryKey;autoIncrement"`
	EntityTypeID  uint   `gorm:"column:entity_type_id"`
	AttributeCode string `gorm:"column:attribute_code;type:varchar(255)"`
	BackendType   string `gorm:"column:backend_type;type:varchar(8)"`
	FrontendInput string `gorm:"column:frontend_input;type:varchar(50)"`
	FrontendLabel string `gorm:"column:frontend_label;type:varchar(255)"`
}

// TableName overrides the table name.
func (EavAttribute) TableName() string {
	return "eav_attribute"
}

// AttributeOption represents the 'eav_attribute_option' table.
type AttributeOption struct {
	OptionID    uint `gorm:"column:option_id;primaryKey;autoIncrement"`
	AttributeID uint `gorm:"column:attribute_id;index"`
	SortOrder   int  `gorm:"column:sort_order"`
}

// TableName overrides the table name.
func (AttributeOption) TableName() string {
	return "eav_attribute_option"
}

// AttributeOptionValue represents the 'eav_attribute_option_value' table.
type AttributeOptionValue struct {
	ValueID  uint   `gorm:"column:value_id;primaryKey;autoIncrement"`
	OptionID uint   `gorm:"column:option_id;index"`
	StoreID  uint   `gorm:"column:store_id"`
	Value    string `gorm:"column:value;type:varchar(255)"`
}

// TableName overrides the table name.
func (AttributeOptionValue) TableName() string {
	return "eav_attribute_option_value"
}

// ProductIntValue represents the 'catalog_product_entity_int' table, which holds
// the selected option of select-type attributes per product.
type ProductIntValue struct {
	ValueID     uint `gorm:"column:value_id;primaryKey;autoIncrement"`
	AttributeID uint `gorm:"column:attribute_id"`
	StoreID     uint `gorm:"column:store_id"`
	EntityID    uint `gorm:"column:entity_id;index"`
	Value       int  `gorm:"column:value"`
}

// TableName overrides the table name.
func (ProductIntValue) TableName() string {
	return "catalog_product_entity_int"
}

// Category represents the 'catalog_category_entity' table.
type Category struct {
	EntityID      uint   `gorm:"column:entity_id;primaryKey;autoIncrement"`
	ParentID      uint   `gorm:"column:parent_id"`
	Path          string `gorm:"column:path;type:varchar(255)"`
	Position      int    `gorm:"column:position"`
	Level         int    `gorm:"column:level"`
	ChildrenCount int    `gorm:"column:children_count"`
}

// TableName overrides the table name.
func (Category) TableName() string {
	return "catalog_category_entity"
}

// CategoryProduct represents the 'catalog_category_product' table.
type CategoryProduct struct {
	EntityID   uint `gorm:"column:entity_id;primaryKey;autoIncrement"`
	CategoryID uint `gorm:"column:category_id;index"`
	ProductID  uint `gorm:"column:product_id"`
	Position   int  `gorm:"column:position"`
}

// TableName overrides the table name.
func (CategoryProduct) TableName() string {
	return "catalog_category_product"
}

// All lists every table model the service reads or writes, in migration order.
func All() []any {
	return []any{
		&Product{},
		&SuperLink{},
		&SuperAttribute{},
		&SuperAttributeLabel{},
		&EavAttribute{},
		&AttributeOption{},
		&AttributeOptionValue{},
		&ProductIntValue{},
		&Category{},
		&CategoryProduct{},
	}
}
