package seq

/*
Remarks:
--------

- The tree is a 2-3 finger tree with a size measure. Digits of 1…4 entries
  live at both ends of each spine level; the interior branches with 2-3
  nodes, each caching the element count of its subtree.

- The textbook formulation nests the element type (a spine of nodes of nodes
  of …). Go generics do not support polymorphic recursion, so the nesting is
  flattened into a single node type which carries its own subtree: entries of
  the outermost digits are leaves, entries one spine level up are 2-3 nodes
  of leaves, and so on. The operations keep entry depth uniform per level.

- A new modified incarnation of a sequence always is reflected by a new tree
  root. Nodes are never mutated after construction.

*/

// node is an entry of a digit: either a leaf holding a single element, or an
// interior 2-3 branch. The size field caches the element count of the
// subtree and is recomputed whenever a node is built.
type node[T any] struct {
	size     int
	value    T          // only valid for leafs
	children []*node[T] // nil ⇒ leaf
}

func leaf[T any](value T) *node[T] {
	return &node[T]{size: 1, value: value}
}

// branch builds an interior node from 2 or 3 children, recomputing the
// cached size.
func branch[T any](children ...*node[T]) *node[T] {
	assertThat(len(children) == 2 || len(children) == 3,
		"interior node needs arity 2 or 3, has %d", len(children))
	size := 0
	for _, ch := range children {
		size += ch.size
	}
	return &node[T]{size: size, children: children}
}

func (n *node[T]) isLeaf() bool {
	return n.children == nil
}

// --- Digit -----------------------------------------------------------------

// digit is a group of 1…4 entries at one end of a spine level. A zero-length
// digit never persists inside a tree; it only occurs transiently during
// restructuring (see deepL/deepR).
type digit[T any] []*node[T]

func (d digit[T]) size() int {
	size := 0
	for _, n := range d {
		size += n.size
	}
	return size
}

// pushFront returns a fresh digit with n prepended.
func (d digit[T]) pushFront(n *node[T]) digit[T] {
	cow := make(digit[T], len(d)+1)
	cow[0] = n
	copy(cow[1:], d)
	return cow
}

// pushBack returns a fresh digit with n appended. Copying is mandatory:
// appending in place could overwrite a backing array shared with an older
// incarnation of the tree.
func (d digit[T]) pushBack(n *node[T]) digit[T] {
	cow := make(digit[T], len(d)+1)
	copy(cow, d)
	cow[len(d)] = n
	return cow
}

func (d digit[T]) dropFront() digit[T] {
	return d[1:]
}

func (d digit[T]) dropBack() digit[T] {
	return d[:len(d)-1]
}

// --- Tree variants ---------------------------------------------------------

// ftree is one spine level of a finger tree: empty, a single entry, or a
// deep level with two digits flanking an inner spine.
type ftree[T any] interface {
	measure() int
}

type emptyTree[T any] struct{}

type singleTree[T any] struct {
	n *node[T]
}

type deepTree[T any] struct {
	size  int
	left  digit[T]
	spine ftree[T]
	right digit[T]
}

func (t emptyTree[T]) measure() int  { return 0 }
func (t singleTree[T]) measure() int { return t.n.size }
func (t *deepTree[T]) measure() int  { return t.size }

// newDeep builds a deep level, enforcing the digit invariants and
// recomputing the cached size.
func newDeep[T any](left digit[T], spine ftree[T], right digit[T]) *deepTree[T] {
	assertThat(len(left) >= 1 && len(left) <= 4, "left digit needs arity 1…4, has %d", len(left))
	assertThat(len(right) >= 1 && len(right) <= 4, "right digit needs arity 1…4, has %d", len(right))
	return &deepTree[T]{
		size:  left.size() + spine.measure() + right.size(),
		left:  left,
		spine: spine,
		right: right,
	}
}

// digitToTree rebuilds a (possibly empty) digit as a standalone tree.
func digitToTree[T any](d digit[T]) ftree[T] {
	switch len(d) {
	case 0:
		return emptyTree[T]{}
	case 1:
		return singleTree[T]{n: d[0]}
	case 2:
		return newDeep[T](digit[T]{d[0]}, emptyTree[T]{}, digit[T]{d[1]})
	case 3:
		return newDeep[T](digit[T]{d[0], d[1]}, emptyTree[T]{}, digit[T]{d[2]})
	case 4:
		return newDeep[T](digit[T]{d[0], d[1]}, emptyTree[T]{}, digit[T]{d[2], d[3]})
	}
	assertThat(false, "digit overflow: arity %d", len(d))
	return nil
}

// deepL completes a deep level whose left digit may have become empty.
// An empty left digit borrows the first node from the spine and explodes it
// into a digit; if the spine is empty too, the level collapses onto the
// right digit.
func deepL[T any](left digit[T], spine ftree[T], right digit[T]) ftree[T] {
	if len(left) > 0 {
		return newDeep(left, spine, right)
	}
	if n, rest, ok := treeUncons(spine); ok {
		tracer().Debugf("borrowing a node with %d entries from the spine", len(n.children))
		return newDeep(digit[T](n.children), rest, right)
	}
	return digitToTree(right)
}

// deepR is the mirror image of deepL for the right digit.
func deepR[T any](left digit[T], spine ftree[T], right digit[T]) ftree[T] {
	if len(right) > 0 {
		return newDeep(left, spine, right)
	}
	if n, rest, ok := treeUnsnoc(spine); ok {
		tracer().Debugf("borrowing a node with %d entries from the spine", len(n.children))
		return newDeep(left, rest, digit[T](n.children))
	}
	return digitToTree(left)
}

// --- Ends ------------------------------------------------------------------

// treeCons pushes an entry onto the left end. A full left digit packs its
// three rightmost entries into a 2-3 node which is pushed one spine level
// down, paying for the amortized O(1) bound.
func treeCons[T any](t ftree[T], n *node[T]) ftree[T] {
	switch t := t.(type) {
	case emptyTree[T]:
		return singleTree[T]{n: n}
	case singleTree[T]:
		return newDeep[T](digit[T]{n}, emptyTree[T]{}, digit[T]{t.n})
	case *deepTree[T]:
		if len(t.left) < 4 {
			return newDeep(t.left.pushFront(n), t.spine, t.right)
		}
		tracer().Debugf("left digit overflow, pushing a 3-node into the spine")
		packed := branch(t.left[1], t.left[2], t.left[3])
		return newDeep(digit[T]{n, t.left[0]}, treeCons(t.spine, packed), t.right)
	}
	assertThat(false, "unknown tree variant %T", t)
	return nil
}

// treeSnoc is the mirror image of treeCons for the right end.
func treeSnoc[T any](t ftree[T], n *node[T]) ftree[T] {
	switch t := t.(type) {
	case emptyTree[T]:
		return singleTree[T]{n: n}
	case singleTree[T]:
		return newDeep[T](digit[T]{t.n}, emptyTree[T]{}, digit[T]{n})
	case *deepTree[T]:
		if len(t.right) < 4 {
			return newDeep(t.left, t.spine, t.right.pushBack(n))
		}
		tracer().Debugf("right digit overflow, pushing a 3-node into the spine")
		packed := branch(t.right[0], t.right[1], t.right[2])
		return newDeep(t.left, treeSnoc(t.spine, packed), digit[T]{t.right[3], n})
	}
	assertThat(false, "unknown tree variant %T", t)
	return nil
}

// treeUncons pops the leftmost entry. ok is false for an empty tree.
func treeUncons[T any](t ftree[T]) (*node[T], ftree[T], bool) {
	switch t := t.(type) {
	case emptyTree[T]:
		return nil, t, false
	case singleTree[T]:
		return t.n, emptyTree[T]{}, true
	case *deepTree[T]:
		return t.left[0], deepL(t.left.dropFront(), t.spine, t.right), true
	}
	assertThat(false, "unknown tree variant %T", t)
	return nil, nil, false
}

// treeUnsnoc pops the rightmost entry. ok is false for an empty tree.
func treeUnsnoc[T any](t ftree[T]) (*node[T], ftree[T], bool) {
	switch t := t.(type) {
	case emptyTree[T]:
		return nil, t, false
	case singleTree[T]:
		return t.n, emptyTree[T]{}, true
	case *deepTree[T]:
		return t.right[len(t.right)-1], deepR(t.left, t.spine, t.right.dropBack()), true
	}
	assertThat(false, "unknown tree variant %T", t)
	return nil, nil, false
}
