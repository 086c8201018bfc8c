package Queues

type Queue[T any] interface {
	Enqueue(item T)
	//Dequeue removes the front element. The error is non-nil iff the queue is empty.
	Dequeue() (T, error)
	//Peek at the front element. The error is non-nil iff the queue is empty.
	Peek() (T, error)
	Empty() bool
	Size() int
	Clear()
}
