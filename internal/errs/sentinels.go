// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service/blob layers.
var (
	// ErrNotFound indicates the requested entity or binary does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID indicates an empty identifier or one containing
	// path separators or parent-directory segments.
	ErrInvalidID = errors.New("invalid identifier")

	// ErrInvalidArgument indicates malformed or missing required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIntegrity indicates a digest mismatch on binary upload.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrUnauthenticated indicates a missing, malformed or incorrect bearer token.
	ErrUnauthenticated = errors.New("unauthenticated")
)
