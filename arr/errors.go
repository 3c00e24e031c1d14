package arr

import "errors"

// Sentinel errors returned by arr helpers.
var (
	// ErrInvalidChunkSize is returned when Chunk is called with size <= 0.
	ErrInvalidChunkSize = errors.New("arr: chunk size must be greater than 0")

	// ErrInvalidQuery is returned when a JSONPath expression does not parse
	// or the queried value cannot be represented as JSON.
	ErrInvalidQuery = errors.New("arr: invalid query")
)
