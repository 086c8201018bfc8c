package Heaps

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
	"golang.org/x/exp/constraints"
)

var _ containers.Container = (*MinHeap[int])(nil)

// MinHeap is a binary min-heap stored in an ArrayList: the children of i are 2i+1 and 2i+2, and no
// element compares less than its parent. Insert and ExtractMin are O(log n); both sift iteratively.
type MinHeap[T any] struct {
	heap *Lists.ArrayList[T]
	cmp  func(a, b T) int
}

// New heap ordered by the natural order of T.
func New[T constraints.Ordered]() *MinHeap[T] {
	return NewFunc(Lists.Compare[T])
}

// NewFunc makes a heap ordered by cmp, which must be a total order returning <0, 0, >0 like cmp.Compare.
func NewFunc[T any](cmp func(a, b T) int) *MinHeap[T] {
	return &MinHeap[T]{Lists.NewArrayList[T](), cmp}
}

func parent(i int) int {
	return (i - 1) / 2
}

func left(i int) int {
	return 2*i + 1
}

// at i, which the sift loops keep in [0,Size()).
func (u *MinHeap[T]) at(i int) T {
	return u.heap.At(i)
}

// Insert item and sift it up while its parent compares greater.
func (u *MinHeap[T]) Insert(item T) {
	u.heap.Add(item)
	u.siftUp(u.heap.Size() - 1)
}

func (u *MinHeap[T]) siftUp(i int) {
	for i > 0 {
		p := parent(i)
		if u.cmp(u.at(p), u.at(i)) <= 0 {
			return
		}
		u.heap.Swap(p, i)
		i = p
	}
}

// siftDown swaps i with its smallest child until neither child is smaller.
func (u *MinHeap[T]) siftDown(i int) {
	for n := u.heap.Size(); ; {
		m := i
		if l := left(i); l < n && u.cmp(u.at(l), u.at(m)) < 0 {
			m = l
		}
		if r := left(i) + 1; r < n && u.cmp(u.at(r), u.at(m)) < 0 {
			m = r
		}
		if m == i {
			return
		}
		u.heap.Swap(i, m)
		i = m
	}
}

// Peek at the minimum. Returns *EmptyContainerError if the heap is empty.
func (u *MinHeap[T]) Peek() (T, error) {
	if u.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "Peek"}
	}
	return u.at(0), nil
}

// ExtractMin removes and returns the minimum. Returns *EmptyContainerError if the heap is empty.
func (u *MinHeap[T]) ExtractMin() (T, error) {
	if u.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "ExtractMin"}
	}
	u.heap.Swap(0, u.heap.Size()-1)
	m, err := u.heap.RemoveLast()
	if err != nil {
		return m, err
	}
	u.siftDown(0)
	return m, nil
}

func (u *MinHeap[T]) Empty() bool {
	return u.heap.Empty()
}

func (u *MinHeap[T]) Size() int {
	return u.heap.Size()
}

func (u *MinHeap[T]) Clear() {
	u.heap.Clear()
}

// All elements in storage order, which is heap order and not sorted.
func (u *MinHeap[T]) All() iter.Seq[T] {
	return u.heap.All()
}

// Values in storage order.
func (u *MinHeap[T]) Values() []interface{} {
	return u.heap.Values()
}

func (u *MinHeap[T]) String() string {
	return u.heap.String()
}

// Corrupt returns whether some element compares less than its parent.
func (u *MinHeap[T]) Corrupt() bool {
	for i := 1; i < u.heap.Size(); i++ {
		if u.cmp(u.at(parent(i)), u.at(i)) > 0 {
			return true
		}
	}
	return false
}
