// Package sqlite implements the character store on SQLite.
//
// A character spans three tables: the identity row, one row per advantage and
// one row per occupied health box. Writes that touch several tables run in a
// single transaction so a damage map is always replaced in full.
package sqlite
