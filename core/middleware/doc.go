// Package middleware groups the Fiber middleware mounted in front of the catalog routes.
//
// The rayid subpackage tags every request with an id that is echoed in the
// X-Ray-ID header and attached to request logs. The auth subpackage checks
// the X-API-Key header and is only mounted when an API key is configured.
package middleware
