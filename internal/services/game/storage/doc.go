// Package storage defines persistence contracts for game characters.
//
// Implementations live in subpackages (sqlite, bbolt). Every backend replaces
// the damage map in full on write and returns ErrNotFound for unknown
// characters.
package storage
