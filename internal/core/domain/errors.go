package domain

import "errors"

// Domain errors represent conversion failures.
// All of them are fatal for a run.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTableNotFound indicates the document has no table at the expected place.
	ErrTableNotFound = errors.New("table not found")

	// ErrColumnMismatch indicates a table header does not match any accepted layout.
	ErrColumnMismatch = errors.New("columns didn't match")

	// ErrRowShape indicates a table row has the wrong number of cells.
	ErrRowShape = errors.New("unexpected row shape")

	// ErrFetchFailed indicates a source could not be read.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrSequenceConsumed indicates a single-use fragment sequence was iterated twice.
	ErrSequenceConsumed = errors.New("sequence already consumed")
)
