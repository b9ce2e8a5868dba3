// Package zavod holds module-level metadata.
package zavod

// Version is the semantic version of the zavod server and CLI.
const Version = "1.0.0"
