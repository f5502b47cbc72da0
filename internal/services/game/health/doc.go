// Package health exposes the caller-facing health track operations.
//
// Every operation is one load, mutate and save against the character store.
// The service validates caller input before reaching the engine, which never
// fails on its own; partial outcomes (damage that did not fit, heals with
// nothing to clear) come back as counts. There is no locking: two commands
// racing on the same character are serialized only by the store.
package health
