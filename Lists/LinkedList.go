package Lists

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	Go_Containers "github.com/g-m-twostay/go-containers"
)

var (
	_ List[int]            = (*LinkedList[int])(nil)
	_ containers.Container = (*LinkedList[int])(nil)
)

// LinkedList is a doubly linked list. Operations on either end are O(1); indexed operations are
// O(min(index, Size()-index)) since they walk from the closer end.
// Nodes live in an arena and are addressed by index; 0 is the nil index, so head==0 iff the list is empty.
type LinkedList[T any] struct {
	a          arena[T, uint]
	head, tail uint
	sz         int
}

func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{a: makeArena[T, uint]()}
}

// lazy init so that the zero value is usable.
func (this *LinkedList[T]) init() {
	if this.a.ns == nil {
		this.a = makeArena[T, uint]()
	}
}

// nodeAt index, which must be in [0,sz).
func (this *LinkedList[T]) nodeAt(index int) uint {
	var cur uint
	if index < this.sz/2 {
		cur = this.head
		for i := 0; i < index; i++ {
			cur = this.a.get(cur).next
		}
	} else {
		cur = this.tail
		for i := this.sz - 1; i > index; i-- {
			cur = this.a.get(cur).prev
		}
	}
	return cur
}

// linkBefore inserts v before node n. n==0 means append.
func (this *LinkedList[T]) linkBefore(v T, n uint) {
	this.init()
	var prev uint
	if n == 0 {
		prev = this.tail
	} else {
		prev = this.a.get(n).prev
	}
	i := this.a.alloc(v, prev, n)
	if prev == 0 {
		this.head = i
	} else {
		this.a.get(prev).next = i
	}
	if n == 0 {
		this.tail = i
	} else {
		this.a.get(n).prev = i
	}
	this.sz++
}

// unlink node n from its neighbours and release it.
func (this *LinkedList[T]) unlink(n uint) T {
	cur := this.a.get(n)
	v := cur.v
	if cur.prev == 0 {
		this.head = cur.next
	} else {
		this.a.get(cur.prev).next = cur.next
	}
	if cur.next == 0 {
		this.tail = cur.prev
	} else {
		this.a.get(cur.next).prev = cur.prev
	}
	this.a.release(n)
	this.sz--
	return v
}

func (this *LinkedList[T]) Size() int {
	return this.sz
}

func (this *LinkedList[T]) Empty() bool {
	return this.sz == 0
}

func (this *LinkedList[T]) Add(item T) {
	this.linkBefore(item, 0)
}

func (this *LinkedList[T]) Insert(index int, item T) error {
	if e := Go_Containers.CheckPosition(index, this.sz); e != nil {
		return e
	}
	if index == this.sz {
		this.linkBefore(item, 0)
	} else {
		this.linkBefore(item, this.nodeAt(index))
	}
	return nil
}

func (this *LinkedList[T]) AddFirst(item T) {
	this.linkBefore(item, this.head)
}

func (this *LinkedList[T]) AddLast(item T) {
	this.linkBefore(item, 0)
}

func (this *LinkedList[T]) Set(index int, item T) error {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return e
	}
	this.a.get(this.nodeAt(index)).v = item
	return nil
}

func (this *LinkedList[T]) Get(index int) (T, error) {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return *new(T), e
	}
	return this.a.get(this.nodeAt(index)).v, nil
}

func (this *LinkedList[T]) GetFirst() (T, error) {
	if this.head == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "GetFirst"}
	}
	return this.a.get(this.head).v, nil
}

func (this *LinkedList[T]) GetLast() (T, error) {
	if this.tail == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "GetLast"}
	}
	return this.a.get(this.tail).v, nil
}

func (this *LinkedList[T]) Remove(index int) (T, error) {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return *new(T), e
	}
	return this.unlink(this.nodeAt(index)), nil
}

func (this *LinkedList[T]) RemoveFirst() (T, error) {
	if this.head == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "RemoveFirst"}
	}
	return this.unlink(this.head), nil
}

func (this *LinkedList[T]) RemoveLast() (T, error) {
	if this.tail == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "RemoveLast"}
	}
	return this.unlink(this.tail), nil
}

func (this *LinkedList[T]) IndexFunc(f func(T) bool) int {
	for i, cur := 0, this.head; cur != 0; i, cur = i+1, this.a.get(cur).next {
		if f(this.a.get(cur).v) {
			return i
		}
	}
	return -1
}

func (this *LinkedList[T]) LastIndexFunc(f func(T) bool) int {
	for i, cur := this.sz-1, this.tail; cur != 0; i, cur = i-1, this.a.get(cur).prev {
		if f(this.a.get(cur).v) {
			return i
		}
	}
	return -1
}

// SortFunc sorts the values and writes them back into the existing nodes in order. Nodes keep their
// identity, so open iterators stay at the same positions.
func (this *LinkedList[T]) SortFunc(cmp func(a, b T) int) {
	if this.sz <= 1 {
		return
	}
	vs := this.ToArray()
	insertionSort(vs, cmp)
	for i, cur := 0, this.head; cur != 0; i, cur = i+1, this.a.get(cur).next {
		this.a.get(cur).v = vs[i]
	}
}

func (this *LinkedList[T]) ToArray() []T {
	vs := make([]T, 0, this.sz)
	for cur := this.head; cur != 0; cur = this.a.get(cur).next {
		vs = append(vs, this.a.get(cur).v)
	}
	return vs
}

// Clear the list and zero the node storage.
func (this *LinkedList[T]) Clear() {
	if this.a.ns != nil {
		this.a.reset()
	}
	this.head, this.tail, this.sz = 0, 0, 0
}

func (this *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := this.head; this.a.valid(cur); cur = this.a.get(cur).next {
			if !yield(this.a.get(cur).v) {
				return
			}
		}
	}
}

// Backward yields elements from last to first.
func (this *LinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := this.tail; this.a.valid(cur); cur = this.a.get(cur).prev {
			if !yield(this.a.get(cur).v) {
				return
			}
		}
	}
}

func (this *LinkedList[T]) Values() []interface{} {
	return Go_Containers.Collect(this.All(), this.sz)
}

func (this *LinkedList[T]) String() string {
	return Go_Containers.Format(this.All())
}

func (this *LinkedList[T]) Iterator() Go_Containers.Iterator[T] {
	return &linkedCursor[T]{l: this, next: this.head}
}

// linkedCursor over a LinkedList. next is the node Next returns; last is the node Next last returned.
// Both are 0 when absent.
type linkedCursor[T any] struct {
	l          *LinkedList[T]
	next, last uint
}

func (c *linkedCursor[T]) HasNext() bool {
	return c.l.a.valid(c.next)
}

func (c *linkedCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return *new(T), &Go_Containers.IteratorExhaustedError{}
	}
	c.last = c.next
	cur := c.l.a.get(c.last)
	c.next = cur.next
	return cur.v, nil
}

// Remove unlinks the last returned node. next already points past it, so nothing is skipped.
func (c *linkedCursor[T]) Remove() error {
	if !c.l.a.valid(c.last) {
		c.last = 0
		return &Go_Containers.IllegalStateError{Op: "Remove"}
	}
	c.l.unlink(c.last)
	c.last = 0
	return nil
}
