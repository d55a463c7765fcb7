// Package common defines shared sentinel errors used across contractpad
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Actor-scoped operations invoked without an authenticated actor.
	ErrAuthRequired = errors.New("authentication required")

	// Remote store unreachable or answering with a server error.
	ErrUnavailable = errors.New("remote unavailable")

	// Generic internal failure.
	ErrInternal = errors.New("internal error")
)
