package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrHistoryUnavailable indicates no chart store is configured.
	ErrHistoryUnavailable = errors.New("chart history unavailable")

	// Computation Errors.
	//
	// These indicate a defect upstream rather than a recoverable condition.
	// They abort the computation of a single placement, never the process.

	// ErrLongitudeOutOfRange indicates a longitude outside [0, 360) reached sign classification.
	ErrLongitudeOutOfRange = errors.New("longitude out of range")

	// ErrUnknownBody indicates a body outside the fixed set of charted bodies.
	ErrUnknownBody = errors.New("unknown body")

	// ErrUnsupportedBody indicates an ephemeris was asked for a body it does not cover.
	ErrUnsupportedBody = errors.New("unsupported body")

	// ErrNoConvergence indicates an iterative solver failed to reach its tolerance.
	ErrNoConvergence = errors.New("no convergence")
)
