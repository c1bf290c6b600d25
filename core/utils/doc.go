// Package utils parses identifiers and flags read from path parameters,
// query strings and CLI arguments.
package utils
