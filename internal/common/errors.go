// Package common defines shared constants and sentinel errors used across
// client and server layers of AstroProof. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Malformed user input; the user must correct and resubmit.
	ErrValidation = errors.New("validation error")

	// Envelope could not be opened: wrong passphrase, tampering or
	// malformed input, indistinguishably.
	ErrDecryption = errors.New("wrong passphrase or corrupted data")

	// An external collaborator (ledger, blob store, usage counter) could not
	// be reached or answered with a failure.
	ErrFetch = errors.New("fetch failed")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
