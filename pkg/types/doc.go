// Package types defines the knowledge-base entity types, the request and
// response shapes accepted at the boundary, validation of those shapes, and
// the standard error values shared by the store and the HTTP layer.
package types
