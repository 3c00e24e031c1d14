package objects

import "errors"

// Sentinel errors returned by objects operations.
//
// Missing paths and keys are never errors; they resolve to a default value.
var (
	// ErrInvalidOption is returned by [NewResolver] when the delimiter or
	// wildcard is empty, or when both are the same string.
	ErrInvalidOption = errors.New("objects: invalid option value")

	// ErrUnknownOperator is returned by [ParseOperator] for a tag outside
	// eq, ne, lt, gt, lte, gte, contains, notContains, newer, older.
	ErrUnknownOperator = errors.New("objects: unknown comparison operator")

	// ErrInvalidJSON is returned when a document cannot be decoded as JSON.
	ErrInvalidJSON = errors.New("objects: invalid json document")

	// ErrInvalidYAML is returned when a document cannot be decoded as YAML.
	ErrInvalidYAML = errors.New("objects: invalid yaml document")

	// ErrEncoding is returned when a value cannot be serialised, for example
	// because it holds a func or channel.
	ErrEncoding = errors.New("objects: value cannot be encoded")
)
