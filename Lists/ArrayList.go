package Lists

import (
	"iter"

	"github.com/emirpasic/gods/containers"
	Go_Containers "github.com/g-m-twostay/go-containers"
)

// DefaultCapacity of an ArrayList made by NewArrayList.
const DefaultCapacity = 10

var (
	_ List[int]            = (*ArrayList[int])(nil)
	_ containers.Container = (*ArrayList[int])(nil)
)

// ArrayList is a growable array. Indexed access is O(1); Insert and Remove are O(Size()-index).
// len(content) is the capacity and content[sz:] holds only zero values.
// The zero value is an empty list with capacity 0.
type ArrayList[T any] struct {
	sz      int
	content []T
}

func NewArrayList[T any]() *ArrayList[T] {
	return &ArrayList[T]{0, make([]T, DefaultCapacity)}
}

// NewArrayListCap makes an empty list with capacity initCap. Returns *InvalidArgumentError if initCap<0.
func NewArrayListCap[T any](initCap int) (*ArrayList[T], error) {
	if initCap < 0 {
		return nil, &Go_Containers.InvalidArgumentError{Arg: "capacity", Value: initCap}
	}
	return &ArrayList[T]{0, make([]T, initCap)}, nil
}

// ensureCap grows content to at least minCap: doubles, or jumps straight to minCap if doubling isn't enough.
func (this *ArrayList[T]) ensureCap(minCap int) {
	if minCap > len(this.content) {
		this.resize(max(len(this.content)*2, minCap))
	}
}

func (this *ArrayList[T]) resize(newLen int) {
	nc := make([]T, newLen)
	copy(nc, this.content[:this.sz])
	this.content = nc
}

// Shrink capacity to Size(), but not below 1.
func (this *ArrayList[T]) Shrink() {
	this.resize(max(this.sz, 1))
}

func (this *ArrayList[T]) Cap() int {
	return len(this.content)
}

func (this *ArrayList[T]) Size() int {
	return this.sz
}

func (this *ArrayList[T]) Empty() bool {
	return this.sz == 0
}

// Add item to the end. Amortized O(1).
func (this *ArrayList[T]) Add(item T) {
	this.ensureCap(this.sz + 1)
	this.content[this.sz] = item
	this.sz++
}

func (this *ArrayList[T]) Insert(index int, item T) error {
	if e := Go_Containers.CheckPosition(index, this.sz); e != nil {
		return e
	}
	this.ensureCap(this.sz + 1)
	copy(this.content[index+1:this.sz+1], this.content[index:this.sz])
	this.content[index] = item
	this.sz++
	return nil
}

// AddFirst is O(Size()).
func (this *ArrayList[T]) AddFirst(item T) {
	_ = this.Insert(0, item)
}

func (this *ArrayList[T]) AddLast(item T) {
	this.Add(item)
}

func (this *ArrayList[T]) Set(index int, item T) error {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return e
	}
	this.content[index] = item
	return nil
}

func (this *ArrayList[T]) Get(index int) (T, error) {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return *new(T), e
	}
	return this.content[index], nil
}

func (this *ArrayList[T]) GetFirst() (T, error) {
	if this.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "GetFirst"}
	}
	return this.content[0], nil
}

func (this *ArrayList[T]) GetLast() (T, error) {
	if this.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "GetLast"}
	}
	return this.content[this.sz-1], nil
}

func (this *ArrayList[T]) Remove(index int) (T, error) {
	if e := Go_Containers.CheckIndex(index, this.sz); e != nil {
		return *new(T), e
	}
	return this.remove(index), nil
}

// remove shifts content[index+1:] left and zeroes the vacated slot. index must be valid.
func (this *ArrayList[T]) remove(index int) T {
	t := this.content[index]
	copy(this.content[index:], this.content[index+1:this.sz])
	this.sz--
	this.content[this.sz] = *new(T)
	return t
}

func (this *ArrayList[T]) RemoveFirst() (T, error) {
	if this.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "RemoveFirst"}
	}
	return this.remove(0), nil
}

func (this *ArrayList[T]) RemoveLast() (T, error) {
	if this.sz == 0 {
		return *new(T), &Go_Containers.EmptyContainerError{Op: "RemoveLast"}
	}
	return this.remove(this.sz - 1), nil
}

func (this *ArrayList[T]) IndexFunc(f func(T) bool) int {
	for i, c := range this.content[:this.sz] {
		if f(c) {
			return i
		}
	}
	return -1
}

func (this *ArrayList[T]) LastIndexFunc(f func(T) bool) int {
	for i := this.sz - 1; i > -1; i-- {
		if f(this.content[i]) {
			return i
		}
	}
	return -1
}

// At is Get for callers that have already bounds checked i. Panics with *IndexOutOfRangeError otherwise.
func (this *ArrayList[T]) At(i int) T {
	this.mustIndex(i)
	return this.content[i]
}

// Swap the elements at i and j. Like At, it panics with *IndexOutOfRangeError if either is out of range.
func (this *ArrayList[T]) Swap(i, j int) {
	this.mustIndex(i)
	this.mustIndex(j)
	this.content[i], this.content[j] = this.content[j], this.content[i]
}

// mustIndex guards the unchecked accessors: content[sz:] is addressable but not part of the list.
func (this *ArrayList[T]) mustIndex(i int) {
	if e := Go_Containers.CheckIndex(i, this.sz); e != nil {
		panic(e)
	}
}

// SortFunc is an insertion sort: O(Size()^2) worst case, O(Size()) when already sorted.
func (this *ArrayList[T]) SortFunc(cmp func(a, b T) int) {
	if this.sz <= 1 {
		return
	}
	insertionSort(this.content[:this.sz], cmp)
}

func (this *ArrayList[T]) ToArray() []T {
	a := make([]T, this.sz)
	copy(a, this.content[:this.sz])
	return a
}

// Clear the list. References to elements are dropped; capacity is kept.
func (this *ArrayList[T]) Clear() {
	clear(this.content[:this.sz])
	this.sz = 0
}

func (this *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < this.sz; i++ {
			if !yield(this.content[i]) {
				return
			}
		}
	}
}

// Backward yields elements from last to first.
func (this *ArrayList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := this.sz - 1; i > -1; i-- {
			if i < this.sz && !yield(this.content[i]) {
				return
			}
		}
	}
}

func (this *ArrayList[T]) Values() []interface{} {
	return Go_Containers.Collect(this.All(), this.sz)
}

func (this *ArrayList[T]) String() string {
	return Go_Containers.Format(this.All())
}

func (this *ArrayList[T]) Iterator() Go_Containers.Iterator[T] {
	return &arrayCursor[T]{l: this, last: -1}
}

// arrayCursor over an ArrayList. next is the index Next returns; last is the index Next last returned, or -1.
type arrayCursor[T any] struct {
	l          *ArrayList[T]
	next, last int
}

func (c *arrayCursor[T]) HasNext() bool {
	return c.next < c.l.sz
}

func (c *arrayCursor[T]) Next() (T, error) {
	if !c.HasNext() {
		return *new(T), &Go_Containers.IteratorExhaustedError{}
	}
	c.last = c.next
	c.next++
	return c.l.content[c.last], nil
}

// Remove the last returned element. The cursor steps back with it, so the element that slid into
// its slot is the next one returned.
func (c *arrayCursor[T]) Remove() error {
	if c.last < 0 {
		return &Go_Containers.IllegalStateError{Op: "Remove"}
	}
	if c.last >= c.l.sz { //the list shrank under the cursor.
		c.last = -1
		return &Go_Containers.IllegalStateError{Op: "Remove"}
	}
	c.l.remove(c.last)
	c.next, c.last = c.last, -1
	return nil
}
