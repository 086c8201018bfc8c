package Lists

import "golang.org/x/exp/constraints"

// node in the arena. A node is live iff it is reachable from head; a freed node has prev==freed
// and next chaining the free list.
type node[T any, S constraints.Unsigned] struct {
	v          T
	prev, next S
}

// arena owns every node of a LinkedList; nodes refer to each other by index, so there are no pointer
// cycles between them. ns[0] is the nil node: a zero value that is never handed out, and index 0
// means "no node" everywhere.
type arena[T any, S constraints.Unsigned] struct {
	ns   []node[T, S]
	free S // beginning of the linked list of free indexes, chained through node.next.
}

// freed marks a released node in prev. No arena can hold that many nodes, so it's never a real index.
func freed[S constraints.Unsigned]() S {
	return ^S(0)
}

func makeArena[T any, S constraints.Unsigned]() arena[T, S] {
	return arena[T, S]{ns: make([]node[T, S], 1)}
}

func (u *arena[T, S]) get(i S) *node[T, S] {
	return &u.ns[i]
}

// valid reports whether i denotes an allocated node. Stale handles to released or reset nodes are invalid,
// but a handle whose slot was reallocated denotes the new node.
func (u *arena[T, S]) valid(i S) bool {
	return i != 0 && uint64(i) < uint64(len(u.ns)) && u.ns[i].prev != freed[S]()
}

// alloc a node holding v. Free indexes are reused before the arena grows.
func (u *arena[T, S]) alloc(v T, prev, next S) S {
	i := u.free
	if i == 0 {
		i = S(len(u.ns))
		u.ns = append(u.ns, node[T, S]{v, prev, next})
	} else {
		u.free = u.ns[i].next
		u.ns[i] = node[T, S]{v, prev, next}
	}
	return i
}

// release node i to the free list, dropping its value and links.
func (u *arena[T, S]) release(i S) {
	u.ns[i] = node[T, S]{prev: freed[S](), next: u.free}
	u.free = i
}

// reset to an empty arena. Node storage is zeroed so no element stays reachable, but kept for reuse.
func (u *arena[T, S]) reset() {
	clear(u.ns)
	u.ns = u.ns[:1]
	u.free = 0
}
