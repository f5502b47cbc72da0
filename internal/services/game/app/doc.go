// Package server composes application services for the game gRPC entrypoint.
//
// It wires the character store, the health service, the +health command and
// the interceptor chain into a runnable server instance.
package server
