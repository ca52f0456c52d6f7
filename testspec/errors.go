package testspec

import "errors"

var (
	// ErrEmptySuite fires when a loaded suite has no name or no cases.
	ErrEmptySuite = errors.New("testspec: suite is empty")

	// ErrInvalidCase fires when a case lacks a name, an operation, or
	// expected outputs.
	ErrInvalidCase = errors.New("testspec: invalid case")

	// ErrUnknownOperation fires when a case names an operation the
	// registry does not carry.
	ErrUnknownOperation = errors.New("testspec: unknown operation")

	// ErrDuplicateOperation fires when Register sees a name twice.
	ErrDuplicateOperation = errors.New("testspec: operation already registered")

	// ErrInvalidRegistration fires when Register receives an empty
	// name or a nil function.
	ErrInvalidRegistration = errors.New("testspec: invalid registration")

	// ErrArity fires inside built-in operations when the input slice
	// has the wrong length.
	ErrArity = errors.New("testspec: wrong number of inputs")

	// ErrBadGrade fires when a wire-encoded grade is outside -1..3.
	ErrBadGrade = errors.New("testspec: grade out of range")
)
