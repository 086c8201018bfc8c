package Go_Containers

import (
	"fmt"
	"iter"
	"strings"
)

// Iterator is an explicit cursor into a container. The cursor, not the container, remembers the
// position, so removing through it is well-defined:
//
//	for it := l.Iterator(); it.HasNext(); {
//		v, _ := it.Next()
//		if drop(v) {
//			_ = it.Remove()
//		}
//	}
//
// Mutating the container by other means while a cursor is open gives unspecified (but memory safe) results.
type Iterator[T any] interface {
	//HasNext reports whether Next will return an element.
	HasNext() bool
	//Next element. Returns *IteratorExhaustedError after the last one.
	Next() (T, error)
	//Remove the element last returned by Next from the underlying container. Returns *IllegalStateError
	//if Next hasn't been called, or if Remove was already called after the last Next.
	Remove() error
}

// Seq adapts it to a range-over-func sequence. The sequence is single use since it consumes it.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect into interface values; used for the Values method of gods' containers.Container. n is a
// capacity hint. The result is never nil.
func Collect[T any](seq iter.Seq[T], n int) []interface{} {
	vs := make([]interface{}, 0, n)
	for v := range seq {
		vs = append(vs, v)
	}
	return vs
}

// Format seq as "[a, b, c]".
func Format[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		first = false
	}
	sb.WriteByte(']')
	return sb.String()
}
