// Package integrity provides infrastructure health checks for the catalog web service.
//
// # Checks Provided
//
//   - Schema: Validates that the connected database has the catalog tables and
//     columns the service reads and writes (GORM models are the source of truth).
//   - Storage: Checks that the storage bucket and the audit report folder exist.
//     With fix, the bucket and folder are created.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs schema check.
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
package integrity
