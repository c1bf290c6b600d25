package catalog_test

import (
	"context"
	"testing"

	"catalog-webservice/core/database"
	"catalog-webservice/feature/catalog"
	"catalog-webservice/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// seedCatalog creates a small catalog:
//
//	CFG-1 (1) -> S-RED (10), S-BLUE (11)
//	CFG-2 (2) -> no links
//	S-GREEN (12) unlinked
//	category 5 -> products 10, 11, 11 (duplicate row)
func seedCatalog(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))

	products := []models.Product{
		{EntityID: 1, Sku: "CFG-1", TypeID: models.TypeConfigurable},
		{EntityID: 2, Sku: "CFG-2", TypeID: models.TypeConfigurable},
		{EntityID: 10, Sku: "S-RED", TypeID: models.TypeSimple},
		{EntityID: 11, Sku: "S-BLUE", TypeID: models.TypeSimple},
		{EntityID: 12, Sku: "S-GREEN", TypeID: models.TypeSimple},
	}
	require.NoError(t, db.Create(&products).Error)

	require.NoError(t, db.Create(&[]models.SuperLink{
		{ProductID: 10, ParentID: 1},
		{ProductID: 11, ParentID: 1},
	}).Error)

	require.NoError(t, db.Create(&models.EavAttribute{
		AttributeID: 93, EntityTypeID: 4, AttributeCode: "color",
		BackendType: "int", FrontendInput: "select", FrontendLabel: "Color",
	}).Error)
	require.NoError(t, db.Create(&[]models.AttributeOption{
		{OptionID: 500, AttributeID: 93, SortOrder: 2},
		{OptionID: 501, AttributeID: 93, SortOrder: 1},
		{OptionID: 502, AttributeID: 93, SortOrder: 3},
	}).Error)
	require.NoError(t, db.Create(&[]models.AttributeOptionValue{
		{OptionID: 500, StoreID: 0, Value: "Red"},
		{OptionID: 501, StoreID: 0, Value: "Blue"},
		{OptionID: 502, StoreID: 0, Value: "Green"},
	}).Error)
	require.NoError(t, db.Create(&[]models.ProductIntValue{
		{AttributeID: 93, StoreID: 0, EntityID: 10, Value: 500},
		{AttributeID: 93, StoreID: 0, EntityID: 11, Value: 501},
		{AttributeID: 93, StoreID: 0, EntityID: 12, Value: 502},
	}).Error)
	require.NoError(t, db.Create(&models.SuperAttribute{ID: 7, ProductID: 1, AttributeID: 93, Position: 0}).Error)
	require.NoError(t, db.Create(&models.SuperAttributeLabel{SuperAttributeID: 7, StoreID: 0, UseDefault: 0, Value: "Colour"}).Error)

	require.NoError(t, db.Create(&models.Category{EntityID: 5, ParentID: 1, Path: "1/5", Level: 1}).Error)
	require.NoError(t, db.Create(&[]models.CategoryProduct{
		{CategoryID: 5, ProductID: 10},
		{CategoryID: 5, ProductID: 11},
		{CategoryID: 5, ProductID: 11},
	}).Error)

	return db
}

func TestGormProductStore(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewGormProductStore(seedCatalog(t))

	t.Run("LoadBySku", func(t *testing.T) {
		p, err := store.LoadBySku(ctx, "CFG-1")
		require.NoError(t, err)
		assert.True(t, p.IsConfigurable())
		assert.Equal(t, []uint{10, 11}, p.VariationIDs())
	})

	t.Run("LoadByID", func(t *testing.T) {
		p, err := store.LoadByID(ctx, 12)
		require.NoError(t, err)
		assert.Equal(t, "S-GREEN", p.Sku)

		cfg, err := store.LoadByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "CFG-1", cfg.Sku)
		assert.Empty(t, cfg.Links)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := store.LoadBySku(ctx, "NOPE")
		assert.ErrorIs(t, err, catalog.ErrNotFound)

		_, err = store.LoadByID(ctx, 999)
		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("Size", func(t *testing.T) {
		n, err := store.Size(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), n)
	})

	t.Run("ListSkusByType", func(t *testing.T) {
		skus, err := store.ListSkusByType(ctx, models.TypeConfigurable)
		require.NoError(t, err)
		assert.Equal(t, []string{"CFG-1", "CFG-2"}, skus)
	})

	t.Run("Save replaces links", func(t *testing.T) {
		p, err := store.LoadBySku(ctx, "CFG-2")
		require.NoError(t, err)

		p.SetVariationIDs([]uint{12, 10, 12})
		require.NoError(t, store.Save(ctx, p))

		reloaded, err := store.LoadBySku(ctx, "CFG-2")
		require.NoError(t, err)
		assert.Equal(t, []uint{12, 10}, reloaded.VariationIDs())

		// CFG-1 is untouched.
		other, err := store.LoadBySku(ctx, "CFG-1")
		require.NoError(t, err)
		assert.Equal(t, []uint{10, 11}, other.VariationIDs())
	})
}

func TestGormCategoryStore(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewGormCategoryStore(seedCatalog(t))

	c, err := store.LoadByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "1/5", c.Path)

	n, err := store.ProductCount(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = store.LoadByID(ctx, 6)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestGormAttributeStore(t *testing.T) {
	ctx := context.Background()
	db := seedCatalog(t)
	products := catalog.NewGormProductStore(db)
	store := catalog.NewGormAttributeStore(db)

	cfg, err := products.LoadBySku(ctx, "CFG-1")
	require.NoError(t, err)

	t.Run("ConfigurableAttributes", func(t *testing.T) {
		attrs, err := store.ConfigurableAttributes(ctx, cfg)
		require.NoError(t, err)
		require.Len(t, attrs, 1)

		a := attrs[0]
		assert.Equal(t, uint(7), a.ID)
		assert.Equal(t, "color", a.AttributeCode)
		assert.Equal(t, "Color", a.FrontendLabel)
		assert.Equal(t, "Colour", a.Label)
		assert.False(t, a.UseDefault)
		// Green is not used by any variation; values follow option sort order.
		assert.Equal(t, []models.AttributeValue{
			{ValueIndex: 501, Label: "Blue"},
			{ValueIndex: 500, Label: "Red"},
		}, a.Values)
	})

	t.Run("UsedProductAttributes", func(t *testing.T) {
		attrs, err := store.UsedProductAttributes(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, []models.UsedAttribute{{
			AttributeID:   93,
			AttributeCode: "color",
			FrontendLabel: "Color",
			FrontendInput: "select",
			BackendType:   "int",
		}}, attrs)
	})

	t.Run("No super attributes", func(t *testing.T) {
		simpleProduct, err := products.LoadBySku(ctx, "S-RED")
		require.NoError(t, err)

		attrs, err := store.ConfigurableAttributes(ctx, simpleProduct)
		require.NoError(t, err)
		assert.Empty(t, attrs)
	})
}

func TestVariationRoundTrip(t *testing.T) {
	ctx := context.Background()
	stores := catalog.NewGormStores(seedCatalog(t))
	r := catalog.NewVariationReconciler(stores.Products, zap.NewNop())

	set, err := r.SetVariations(ctx, "CFG-2", []string{"S-GREEN", "S-RED"})
	require.NoError(t, err)
	require.True(t, set.IsSuccess())
	assert.Nil(t, set.Errors)

	got, err := r.GetVariations(ctx, "CFG-2")
	require.NoError(t, err)
	require.True(t, got.IsSuccess())

	assert.ElementsMatch(t, []string{"S-GREEN", "S-RED"}, got.Success.Variations)
	assert.Equal(t, set.Success.AssignedVariations, got)
}

func TestGetVariations_DanglingLink(t *testing.T) {
	ctx := context.Background()
	db := seedCatalog(t)
	require.NoError(t, db.Delete(&models.Product{}, 11).Error)

	r := catalog.NewVariationReconciler(catalog.NewGormProductStore(db), zap.NewNop())
	result, err := r.GetVariations(ctx, "CFG-1")
	require.NoError(t, err)
	require.True(t, result.IsSuccess())

	assert.Equal(t, []string{"S-RED"}, result.Success.Variations)
	assert.Equal(t, []string{"Unable to find simple product for id: '11'"}, result.Warnings())
}

func TestSetVariations_RejectsWrongProductTypes(t *testing.T) {
	ctx := context.Background()
	db := seedCatalog(t)
	r := catalog.NewVariationReconciler(catalog.NewGormProductStore(db), zap.NewNop())

	t.Run("Simple Parent", func(t *testing.T) {
		result, err := r.SetVariations(ctx, "S-RED", []string{"S-BLUE", "CFG-1"})
		require.NoError(t, err)
		assert.Equal(t, catalog.MsgConfigurableNotFound, result.Crit())
		assert.False(t, result.IsSuccess())

		var count int64
		require.NoError(t, db.Model(&models.SuperLink{}).Where("parent_id = ?", 10).Count(&count).Error)
		assert.Zero(t, count)

		got, err := r.GetVariations(ctx, "S-RED")
		require.NoError(t, err)
		assert.Equal(t, catalog.MsgConfigurableNotFound, got.Crit())
	})

	t.Run("Configurable Child", func(t *testing.T) {
		result, err := r.SetVariations(ctx, "CFG-2", []string{"CFG-1", "S-GREEN"})
		require.NoError(t, err)
		require.True(t, result.IsSuccess())
		assert.Equal(t, []string{"Unable to find simple product for sku: 'CFG-1'"}, result.Warnings())

		var links []models.SuperLink
		require.NoError(t, db.Where("parent_id = ?", 2).Find(&links).Error)
		require.Len(t, links, 1)
		assert.Equal(t, uint(12), links[0].ProductID)
	})
}
