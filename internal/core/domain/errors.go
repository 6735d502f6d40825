package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedExample indicates text that violates the
	// three-line-per-example grammar. Such values are never written.
	ErrMalformedExample = errors.New("malformed example text")

	// ErrUnsupportedSource indicates a Row whose source kind has
	// no write-back strategy.
	ErrUnsupportedSource = errors.New("unsupported row source")

	// ErrGeneratorUnavailable indicates no generation backend is
	// configured. Enrichment is disabled without one.
	ErrGeneratorUnavailable = errors.New("generation backend unavailable")

	// ErrRateLimited indicates the store's API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
