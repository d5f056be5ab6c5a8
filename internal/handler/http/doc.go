// Package http implements the REST transport of the notes server.
//
// It wires chi routes for the notes API, authenticates requests with bearer
// tokens and adds request tracing, access logging and gzip compression
// before delegating to the service layer. Note bodies pass through as
// opaque encrypted records.
package http
