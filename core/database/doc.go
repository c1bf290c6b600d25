// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure connections to the catalog database.
// MySQL is the production driver (the Magento catalog schema); SQLite is supported for
// local development and tests.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for either dialect. The integrity feature
// uses it to verify that the catalog tables the service reads and writes exist with the
// expected columns.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "catalog_product_entity")
package database
