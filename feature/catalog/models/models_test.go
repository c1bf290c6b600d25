package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_VariationIDs(t *testing.T) {
	p := Product{
		EntityID: 1,
		TypeID:   TypeConfigurable,
		Links: []SuperLink{
			{LinkID: 1, ProductID: 10, ParentID: 1},
			{LinkID: 2, ProductID: 11, ParentID: 1},
		},
	}

	assert.True(t, p.IsConfigurable())
	assert.Equal(t, []uint{10, 11}, p.VariationIDs())
	assert.Empty(t, Product{}.VariationIDs())
	assert.False(t, Product{TypeID: TypeSimple}.IsConfigurable())
}

func TestProduct_SetVariationIDs(t *testing.T) {
	p := &Product{EntityID: 7}
	p.SetVariationIDs([]uint{12, 10, 12, 11})

	assert.Equal(t, []uint{12, 10, 11}, p.VariationIDs())
	for _, l := range p.Links {
		assert.Equal(t, uint(7), l.ParentID)
		assert.Zero(t, l.LinkID)
	}

	p.SetVariationIDs(nil)
	assert.Empty(t, p.Links)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "catalog_product_entity", Product{}.TableName())
	assert.Equal(t, "catalog_product_super_link", SuperLink{}.TableName())
	assert.Equal(t, "catalog_category_product", CategoryProduct{}.TableName())
	assert.Len(t, All(), 10)
}
