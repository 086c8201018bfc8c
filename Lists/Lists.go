package Lists

import (
	"cmp"
	"iter"

	Go_Containers "github.com/g-m-twostay/go-containers"
	"golang.org/x/exp/constraints"
)

// List is the capability set shared by ArrayList and LinkedList. They share no state, only this contract;
// the difference is in complexity, documented on each implementation.
// Receivers returning an error leave the list unchanged when the error is non-nil.
// Elements can be of any type; searching by equality is IndexOf, LastIndexOf and Exists below.
type List[T any] interface {
	//Add item to the end.
	Add(item T)
	//Insert item before index, 0<=index<=Size(). Insert(Size(), item) is Add(item).
	Insert(index int, item T) error
	AddFirst(item T)
	AddLast(item T)
	//Set the element at index, 0<=index<Size().
	Set(index int, item T) error
	//Get the element at index, 0<=index<Size().
	Get(index int) (T, error)
	GetFirst() (T, error)
	GetLast() (T, error)
	//Remove and return the element at index, 0<=index<Size().
	Remove(index int) (T, error)
	RemoveFirst() (T, error)
	RemoveLast() (T, error)
	//IndexFunc returns the index of the first element satisfying f, or -1.
	IndexFunc(f func(T) bool) int
	//LastIndexFunc returns the index of the last element satisfying f, or -1.
	LastIndexFunc(f func(T) bool) int
	//SortFunc sorts in place using cmp, which returns <0, 0, >0 like cmp.Compare. The sort is stable.
	SortFunc(cmp func(a, b T) int)
	//ToArray returns a copy of the live elements in order.
	ToArray() []T
	Clear()
	Size() int
	Empty() bool
	//Iterator returns a cursor over the list that supports removal.
	Iterator() Go_Containers.Iterator[T]
	//All elements from first to last. The sequence is lazy and reads the list as it goes.
	All() iter.Seq[T]
	Values() []interface{}
	String() string
}

// IndexOf the first element == v, or -1. A nil v finds the first nil element.
func IndexOf[T comparable](l List[T], v T) int {
	return l.IndexFunc(func(c T) bool { return c == v })
}

// LastIndexOf the last element == v, or -1.
func LastIndexOf[T comparable](l List[T], v T) int {
	return l.LastIndexFunc(func(c T) bool { return c == v })
}

func Exists[T comparable](l List[T], v T) bool {
	return IndexOf(l, v) >= 0
}

// Sort l by the natural order of T.
func Sort[T constraints.Ordered](l List[T]) {
	l.SortFunc(Compare[T])
}

// Compare is cmp.Compare: a total order in which NaN sorts before every other value and equals itself.
func Compare[T constraints.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// insertionSort vs in place. An element only moves left past strictly greater ones, which keeps it stable.
// O(n) when vs is already sorted.
func insertionSort[T any](vs []T, cmp func(a, b T) int) {
	for i := 1; i < len(vs); i++ {
		key := vs[i]
		j := i - 1
		for ; j >= 0 && cmp(vs[j], key) > 0; j-- {
			vs[j+1] = vs[j]
		}
		vs[j+1] = key
	}
}
