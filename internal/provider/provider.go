package provider

import "context"

// Role identifies which summary pipeline stage a provider serves.
type Role string

// Provider roles, one per summary pipeline stage.
const (
	// RoleCondense extracts the key points of a policy text.
	RoleCondense Role = "condense"

	// RoleReframe rewrites text to foreground risk and benefit language.
	RoleReframe Role = "reframe"

	// RolePolish adjusts tone and length of the reframed text.
	RolePolish Role = "polish"
)

// Provider is an optional external text-transformation capability.
//
// Design decision: We use a single-method transform interface rather than
// per-role interfaces because the roles differ only in what the backing
// service does with the input, not in the call shape. This keeps mocks
// trivial and lets the timeout wrapper apply uniformly.
type Provider interface {
	// Name returns the provider's name for logging.
	Name() string

	// Transform rewrites input and returns the result.
	// An error means this provider produced nothing usable; callers fall
	// back to whatever they had before the call.
	Transform(ctx context.Context, input string) (string, error)
}

// Set carries the optional providers for the three summary stages.
// A nil field means the capability is absent. The zero value is a valid,
// fully absent set.
type Set struct {
	// Condense produces a short key-point extraction.
	Condense Provider

	// Reframe rewrites toward risk/benefit language.
	Reframe Provider

	// Polish adjusts tone and length.
	Polish Provider
}

// Empty reports whether no provider is configured.
func (s Set) Empty() bool {
	return s.Condense == nil && s.Reframe == nil && s.Polish == nil
}
