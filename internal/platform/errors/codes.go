// Package errors provides structured domain errors that map onto gRPC status.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Character errors
	CodeCharacterEmptyID   Code = "CHARACTER_EMPTY_ID"
	CodeCharacterEmptyName Code = "CHARACTER_EMPTY_NAME"

	// Health errors
	CodeHealthInvalidAmount      Code = "HEALTH_INVALID_AMOUNT"
	CodeHealthInvalidKind        Code = "HEALTH_INVALID_KIND"
	CodeHealthInvalidMax         Code = "HEALTH_INVALID_MAX"
	CodeHealthPositionOutOfRange Code = "HEALTH_POSITION_OUT_OF_RANGE"

	// Command errors
	CodeCommandUnknown       Code = "COMMAND_UNKNOWN"
	CodeCommandInvalidSwitch Code = "COMMAND_INVALID_SWITCH"
	CodeCommandInvalidSyntax Code = "COMMAND_INVALID_SYNTAX"

	// Access errors
	CodeCallerMissing     Code = "CALLER_MISSING"
	CodeStaffTokenInvalid Code = "STAFF_TOKEN_INVALID"
	CodeStaffTokenExpired Code = "STAFF_TOKEN_EXPIRED"
	CodePermissionDenied  Code = "PERMISSION_DENIED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeCharacterEmptyID,
		CodeCharacterEmptyName,
		CodeHealthInvalidAmount,
		CodeHealthInvalidKind,
		CodeHealthInvalidMax,
		CodeHealthPositionOutOfRange,
		CodeCommandUnknown,
		CodeCommandInvalidSwitch,
		CodeCommandInvalidSyntax:
		return codes.InvalidArgument

	// Unauthenticated - caller identity could not be established
	case CodeCallerMissing,
		CodeStaffTokenInvalid,
		CodeStaffTokenExpired:
		return codes.Unauthenticated

	// PermissionDenied - caller is known but not allowed
	case CodePermissionDenied:
		return codes.PermissionDenied

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}
