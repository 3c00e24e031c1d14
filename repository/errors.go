package repository

import "errors"

// Sentinel errors returned by Repository operations.
var (
	// ErrMethodNotFound is returned when neither the handler-set nor its
	// extensions define the called method.
	ErrMethodNotFound = errors.New("repository: method not found")

	// ErrInvalidArgument is returned when a method receives an argument of
	// the wrong type or too few arguments.
	ErrInvalidArgument = errors.New("repository: invalid argument")

	// ErrEmptyMethodName is returned by Call and Extend for an empty name.
	ErrEmptyMethodName = errors.New("repository: method name is empty")

	// ErrNilMethod is returned when Extend is given a nil function.
	ErrNilMethod = errors.New("repository: method is nil")
)
