package Stacks

import (
	"slices"
	"testing"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/stretchr/testify/require"
)

func TestArrayStack_All(t *testing.T) {
	s := New[int]()
	for _, v := range []int{10, 20, 30, 40} {
		s.Push(v)
	}
	require.Equal(t, "[40, 30, 20, 10]", s.String())

	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, 40, v)
	v, err = s.Peek()
	require.NoError(t, err)
	require.Equal(t, 30, v)
	require.Equal(t, 3, s.Size())
	require.Equal(t, []int{30, 20, 10}, slices.Collect(s.All()))
	require.Equal(t, []interface{}{30, 20, 10}, s.Values())
	require.False(t, s.Empty())

	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, 0, s.Size())
}

func TestArrayStack_Empty(t *testing.T) {
	s := New[string]()
	_, err := s.Pop()
	var ece *Go_Containers.EmptyContainerError
	require.ErrorAs(t, err, &ece)
	require.Equal(t, "Pop", ece.Op)
	_, err = s.Peek()
	require.ErrorIs(t, err, Go_Containers.ErrEmptyContainer)

	s.Push("a")
	_, err = s.Pop()
	require.NoError(t, err)
	_, err = s.Pop()
	require.ErrorIs(t, err, Go_Containers.ErrEmptyContainer)
}

func TestArrayStack_Snapshot(t *testing.T) {
	s := New[int]()
	for i := range 5 {
		s.Push(i)
	}
	it := s.Iterator()
	var got []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
		// the push doesn't reach the copy and Remove doesn't reach the stack.
		s.Push(100 + v)
		require.NoError(t, it.Remove())
	}
	require.Equal(t, []int{4, 3, 2, 1, 0}, got)
	require.Equal(t, 10, s.Size())

	var seen []int
	for v := range s.All() {
		if len(seen) == 0 {
			_, _ = s.Pop()
		}
		seen = append(seen, v)
	}
	require.Len(t, seen, 10, "sequence reads the copy, not the shrinking stack")
	require.Equal(t, 9, s.Size())
}

func TestArrayStack_LIFO(t *testing.T) {
	s := New[int]()
	for i := range 1000 {
		s.Push(i)
	}
	for i := 999; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		if v != i {
			t.Fatalf("Pop() = %d; want %d", v, i)
		}
	}
}

func TestArrayStack_Slices(t *testing.T) {
	s := New[[]byte]()
	s.Push([]byte("ab"))
	s.Push(nil)
	s.Push([]byte("c"))
	require.Equal(t, [][]byte{[]byte("c"), nil, []byte("ab")}, slices.Collect(s.All()))
	v, err := s.Pop()
	require.NoError(t, err)
	require.Equal(t, []byte("c"), v)
	v, err = s.Peek()
	require.NoError(t, err)
	require.Nil(t, v)
}
