package value

import (
	"errors"
	"fmt"
)

var (
	// ErrKindMismatch is the category of all wrong-kind accesses.
	ErrKindMismatch = errors.New("kind mismatch")
	// ErrIndexRange is the category of out-of-range array accesses.
	ErrIndexRange = errors.New("index out of range")
	// ErrPath is the category of failed path lookups.
	ErrPath = errors.New("path not found")
)

// KindError reports an operation applied to a value of the wrong kind.
type KindError struct {
	Op   string
	Want Kind
	Got  Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %v: want %s, got %s", e.Op, ErrKindMismatch, e.Want, e.Got)
}

func (e *KindError) Unwrap() error { return ErrKindMismatch }

// RangeError reports an array access outside [0, Len).
type RangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: %v: index %d, length %d", e.Op, ErrIndexRange, e.Index, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrIndexRange }

// PathError reports a path lookup that could not be resolved.
type PathError struct {
	Path    string
	Segment string
	Reason  string
}

func (e *PathError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("%v: %q at segment %q: %s", ErrPath, e.Path, e.Segment, e.Reason)
	}
	return fmt.Sprintf("%v: %q: %s", ErrPath, e.Path, e.Reason)
}

func (e *PathError) Unwrap() error { return ErrPath }
