// Package metadata defines the headers that carry request context across the
// game service's gRPC boundary: correlation ids, caller identity, staff
// bearer tokens and the caller's locale.
package metadata
