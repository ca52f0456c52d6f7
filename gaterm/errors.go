package gaterm

import (
	"errors"
	"fmt"
)

var (
	// ErrGradeMismatch indicates an addition of terms with different grades.
	ErrGradeMismatch = errors.New("gaterm: operands have different grades")

	// ErrDuplicateIndex indicates a blade key containing a repeated basis index.
	ErrDuplicateIndex = errors.New("gaterm: duplicate basis index in blade")

	// ErrIndexOutOfRange indicates a basis index outside 1..MaxBasisIndex.
	ErrIndexOutOfRange = errors.New("gaterm: basis index out of range")
)

// GradeMismatchError reports the two grades involved in a rejected addition.
// It matches ErrGradeMismatch under errors.Is.
type GradeMismatchError struct {
	Left, Right Grade
}

func (e *GradeMismatchError) Error() string {
	return fmt.Sprintf("gaterm: cannot add %s to %s: grades differ", e.Left, e.Right)
}

// Is lets errors.Is(err, ErrGradeMismatch) succeed on a GradeMismatchError.
func (e *GradeMismatchError) Is(target error) bool {
	return target == ErrGradeMismatch
}

// IndexError reports an invalid basis index inside a blade key. It matches
// either ErrDuplicateIndex or ErrIndexOutOfRange under errors.Is,
// depending on the underlying cause.
type IndexError struct {
	Index   int
	Indices []int
	cause   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d in %v", e.cause, e.Index, e.Indices)
}

func (e *IndexError) Unwrap() error { return e.cause }
