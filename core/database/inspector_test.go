package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE catalog_product_entity (entity_id INTEGER PRIMARY KEY, sku TEXT, type_id TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "catalog_product_entity")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["entity_id"])
	assert.Equal(t, "text", colMap["sku"])
	assert.Equal(t, "text", colMap["type_id"])

	// PRAGMA table_info returns no rows for an unknown table.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}
