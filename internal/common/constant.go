// Package common contains constants and sentinel errors shared by the
// gametracker client and backend.
package common

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"
