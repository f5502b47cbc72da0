// Package api contains service API implementations.
//
// Subpackages:
//   - grpc/health: the HealthService (+health command and direct track operations)
//   - grpc/metadata: request metadata helpers and interceptors
//   - grpc/interceptors: caller identity, error translation and audit logging
package api
