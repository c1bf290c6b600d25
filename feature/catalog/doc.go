// Package catalog implements the catalog web service over a Magento catalog database.
//
// It answers six queries through the Repository contract: the catalog and
// category product counts, the configurable and used attributes of a product,
// and reading or replacing the variations of a configurable product.
//
// # Variation Reconciliation
//
// VariationReconciler translates between a configurable product's stored
// variation links (simple product ids) and the simple product SKUs callers use.
// Each call returns a ReconciliationResult:
//
//   - errors.crit aborts the call; the result then has no success part.
//   - errors.warn lists items that could not be resolved. Processing continues
//     past them and each one is logged at warn level.
//   - success holds the resolved payload and a one-line warning summary.
//
// Store failures other than ErrNotFound are returned as Go errors.
//
// # Components
//
//   - Stores: ProductStore, CategoryStore and AttributeStore ports, with a GORM
//     implementation over the catalog_* and eav_* tables.
//   - Service: Repository implementation. Counts are cached, successful
//     variation writes publish a VariationsAssigned event.
//   - Audit: scans every configurable product for dangling links and can upload
//     the JSON report to object storage.
//   - Handler: HTTP endpoints.
//   - Loader: registers the feature when a database is configured.
//
// # HTTP Endpoints
//
//   - GET  /catalog/products/count
//   - GET  /catalog/categories/:id/products/count
//   - GET  /catalog/products/:sku/configurable-attributes
//   - GET  /catalog/products/:sku/used-attributes
//   - GET  /catalog/products/:sku/variations
//   - PUT  /catalog/products/:sku/variations
//   - POST /catalog/audit/variations?upload=true
package catalog
