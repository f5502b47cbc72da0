// Package character models the persisted character record the health
// engine reads and writes.
//
// A character carries a flat set of named advantages (the health track length
// lives under AdvantageHealth) and the sparse damage map keyed by 1-based box
// position. The record stores damage as string labels so every backend can
// persist it without knowing the engine's enumeration.
package character
