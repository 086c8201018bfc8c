package Queues

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	Go_Containers "github.com/g-m-twostay/go-containers"
	"github.com/g-m-twostay/go-containers/Lists"
)

var (
	_ Queue[int]           = (*LinkedQueue[int])(nil)
	_ containers.Container = (*LinkedQueue[int])(nil)
)

// LinkedQueue is a FIFO queue over a LinkedList: the head is the front, the tail is the rear.
// Every operation is O(1).
type LinkedQueue[T any] struct {
	list *Lists.LinkedList[T]
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{Lists.NewLinkedList[T]()}
}

func (this *LinkedQueue[T]) Enqueue(item T) {
	this.list.AddLast(item)
}

func (this *LinkedQueue[T]) Dequeue() (T, error) {
	if this.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "Dequeue"}
	}
	return this.list.RemoveFirst()
}

func (this *LinkedQueue[T]) Peek() (T, error) {
	if this.Empty() {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "Peek"}
	}
	return this.list.GetFirst()
}

func (this *LinkedQueue[T]) Empty() bool {
	return this.list.Empty()
}

func (this *LinkedQueue[T]) Size() int {
	return this.list.Size()
}

func (this *LinkedQueue[T]) Clear() {
	this.list.Clear()
}

// Iterator from front to rear. It is a live view: Remove takes the element out of the queue.
func (this *LinkedQueue[T]) Iterator() Go_Containers.Iterator[T] {
	return this.list.Iterator()
}

// All elements from front to rear, read from the queue as the sequence advances.
func (this *LinkedQueue[T]) All() iter.Seq[T] {
	return this.list.All()
}

func (this *LinkedQueue[T]) Values() []interface{} {
	return this.list.Values()
}

func (this *LinkedQueue[T]) String() string {
	return this.list.String()
}
