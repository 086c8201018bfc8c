package Go_Containers

import (
	"errors"
	"strconv"
)

// Sentinels for errors.Is. Each concrete error type below matches exactly one of them.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrEmptyContainer    = errors.New("container is empty")
	ErrIllegalState      = errors.New("illegal iterator state")
	ErrIteratorExhausted = errors.New("iterator exhausted")
)

// InvalidArgumentError is returned by constructors given a value they can't use, e.g. a negative capacity.
type InvalidArgumentError struct {
	Arg   string
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return "illegal " + e.Arg + ": " + strconv.Itoa(e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// IndexOutOfRangeError is returned when an index falls outside the range an operation accepts.
// Access and removal accept [0,Size); insertion accepts [0,Size].
type IndexOutOfRangeError struct {
	Index, Size int
}

func (e *IndexOutOfRangeError) Error() string {
	return "index: " + strconv.Itoa(e.Index) + ", size: " + strconv.Itoa(e.Size)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// EmptyContainerError is returned by Op when it needs at least one element.
type EmptyContainerError struct {
	Op string
}

func (e *EmptyContainerError) Error() string {
	return "container is empty: cannot " + e.Op
}

func (e *EmptyContainerError) Is(target error) bool {
	return target == ErrEmptyContainer
}

// IllegalStateError is returned by Iterator.Remove when there is no current element.
type IllegalStateError struct {
	Op string
}

func (e *IllegalStateError) Error() string {
	return "illegal iterator state: cannot " + e.Op
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

// IteratorExhaustedError is returned by Iterator.Next once every element has been returned.
type IteratorExhaustedError struct {
}

func (e *IteratorExhaustedError) Error() string {
	return "iterator exhausted: no next element"
}

func (e *IteratorExhaustedError) Is(target error) bool {
	return target == ErrIteratorExhausted
}

// CheckIndex returns an *IndexOutOfRangeError unless 0<=i<size.
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return &IndexOutOfRangeError{i, size}
	}
	return nil
}

// CheckPosition returns an *IndexOutOfRangeError unless 0<=i<=size. Used by insertion.
func CheckPosition(i, size int) error {
	if i < 0 || i > size {
		return &IndexOutOfRangeError{i, size}
	}
	return nil
}
