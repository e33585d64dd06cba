package ingest

import (
	"errors"

	"github.com/lpforge/lpforge/pkg/problem"
)

// Sentinel errors for the ingestion pipeline. Dimension disagreements reuse
// the descriptor's sentinel so callers need a single errors.Is target for
// "lengths disagree" regardless of where the check fired.
var (
	// ErrFileUnreadable wraps failures to read the input document from disk.
	ErrFileUnreadable = errors.New("ingest: file unreadable")

	// ErrMalformedDocument wraps JSON syntax or structural decode failures.
	ErrMalformedDocument = errors.New("ingest: malformed document")

	// ErrMissingField indicates a required object or array is absent.
	ErrMissingField = errors.New("ingest: missing field")

	// ErrInvalidBoundType indicates a relational bound code outside {L, G, E}.
	ErrInvalidBoundType = errors.New("ingest: invalid bound type")

	// ErrNumericParse indicates a string leaf that is neither an infinity
	// sentinel nor a parseable decimal literal. The wrapped message carries
	// the offending text. Lenient mode downgrades this to a logged warning
	// and substitutes 0.0.
	ErrNumericParse = errors.New("ingest: unparseable numeric literal")

	// ErrDimensionMismatch aliases the descriptor sentinel.
	ErrDimensionMismatch = problem.ErrDimensionMismatch
)

// IsIngestError reports whether err belongs to the ingestion error set.
// The CLI uses it to pick an exit status distinguishable from solver-side
// failures.
func IsIngestError(err error) bool {
	for _, sentinel := range []error{
		ErrFileUnreadable,
		ErrMalformedDocument,
		ErrMissingField,
		ErrInvalidBoundType,
		ErrNumericParse,
		problem.ErrDimensionMismatch,
		problem.ErrIndexOutOfRange,
		problem.ErrBoundOrder,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
