// Package authz decides who may read or change a character's health.
//
// Callers are either the character's own player or staff. Players may view
// and modify only themselves; staff may do anything, including the direct
// overrides (set, clear, resize) no player can issue.
package authz
