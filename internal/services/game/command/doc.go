// Package command parses and runs the +health command.
//
// Syntax follows MUSH conventions: a slash switch selects the operation and
// an optional "<character>=" prefix names a target other than the caller.
//
//	+health                              show own track
//	+health <char>                       show another track (staff)
//	+health/damage [<char>=]<n> [kind]   apply damage
//	+health/heal [<char>=]<n> [kind]     heal damage
//	+health/set <char>/<pos>=<kind|clear>
//	+health/clear [<char>]
//	+health/max <char>=<n>
//
// Unrecognized kind labels fall back to bashing.
package command
