package Stacks

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
)

type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() int
	Clear()
}

var (
	_ Stack[int]           = (*ArrayStack[int])(nil)
	_ containers.Container = (*ArrayStack[int])(nil)
)

// ArrayStack is a LIFO stack whose top is the end of an ArrayList.
type ArrayStack[T any] struct {
	list *Lists.ArrayList[T]
}

func New[T any]() *ArrayStack[T] {
	return &ArrayStack[T]{Lists.NewArrayList[T]()}
}

func (this *ArrayStack[T]) Push(item T) {
	this.list.AddLast(item)
}

// Pop the top element. Returns *EmptyContainerError if the stack is empty.
func (this *ArrayStack[T]) Pop() (T, error) {
	if this.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "Pop"}
	}
	return this.list.RemoveLast()
}

// Peek at the top element. Returns *EmptyContainerError if the stack is empty.
func (this *ArrayStack[T]) Peek() (T, error) {
	if this.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "Peek"}
	}
	return this.list.GetLast()
}

func (this *ArrayStack[T]) Empty() bool {
	return this.list.Empty()
}

func (this *ArrayStack[T]) Size() int {
	return this.list.Size()
}

func (this *ArrayStack[T]) Clear() {
	this.list.Clear()
}

// snapshot of the stack from top to bottom.
func (this *ArrayStack[T]) snapshot() *Lists.ArrayList[T] {
	s, _ := Lists.NewArrayListCap[T](this.list.Size())
	for v := range this.list.Backward() {
		s.Add(v)
	}
	return s
}

// Iterator from top to bottom over a copy of the stack taken now. Changes to the stack don't show in
// the iterator, and Remove only drops the element from the copy.
func (this *ArrayStack[T]) Iterator() Go_Containers.Iterator[T] {
	return this.snapshot().Iterator()
}

// All elements from top to bottom, copied when the sequence starts.
func (this *ArrayStack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		this.snapshot().All()(yield)
	}
}

func (this *ArrayStack[T]) Values() []interface{} {
	return Go_Containers.Collect(this.list.Backward(), this.list.Size())
}

func (this *ArrayStack[T]) String() string {
	return Go_Containers.Format(this.list.Backward())
}
