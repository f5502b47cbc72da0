// Package cofd implements Chronicles of Darkness character rules.
package cofd

const (
	// SystemID identifies the Chronicles of Darkness ruleset.
	SystemID = "cofd"
	// SystemVersion tracks the ruleset version used by stored health tracks.
	SystemVersion = "2.0.0"

	// HealthMaxDefault is the track length used when a character has no
	// health advantage recorded.
	HealthMaxDefault = 7
)
