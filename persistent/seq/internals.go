package seq

import "fmt"

// --- Indexing --------------------------------------------------------------

// at descends a node to the element at position i, 0 ≤ i < n.size.
func (n *node[T]) at(i int) T {
	if n.isLeaf() {
		assertThat(i == 0, "leaf position must be 0, is %d", i)
		return n.value
	}
	for _, ch := range n.children {
		if i < ch.size {
			return ch.at(i)
		}
		i -= ch.size
	}
	assertThat(false, "position %d beyond node size", i)
	var none T
	return none
}

func (d digit[T]) at(i int) T {
	for _, n := range d {
		if i < n.size {
			return n.at(i)
		}
		i -= n.size
	}
	assertThat(false, "position %d beyond digit size", i)
	var none T
	return none
}

// treeAt walks the cached sizes top-down to the element at position i,
// 0 ≤ i < t.measure(). Callers are responsible for the bounds check.
func treeAt[T any](t ftree[T], i int) T {
	switch t := t.(type) {
	case singleTree[T]:
		return t.n.at(i)
	case *deepTree[T]:
		if i < t.left.size() {
			return t.left.at(i)
		}
		i -= t.left.size()
		if spine := t.spine.measure(); i < spine {
			return treeAt(t.spine, i)
		} else {
			i -= spine
		}
		return t.right.at(i)
	}
	assertThat(false, "position %d in an empty tree", i)
	var none T
	return none
}

// --- Adjust ----------------------------------------------------------------

// adjusted rebuilds the single path from this node down to position i, with
// f applied to the element there. Untouched siblings are shared.
func (n *node[T]) adjusted(i int, f func(T) T) *node[T] {
	if n.isLeaf() {
		return leaf(f(n.value))
	}
	cow := make([]*node[T], len(n.children))
	copy(cow, n.children)
	for j, ch := range n.children {
		if i < ch.size {
			cow[j] = ch.adjusted(i, f)
			return branch(cow...)
		}
		i -= ch.size
	}
	assertThat(false, "position %d beyond node size", i)
	return nil
}

func (d digit[T]) adjusted(i int, f func(T) T) digit[T] {
	cow := make(digit[T], len(d))
	copy(cow, d)
	for j, n := range d {
		if i < n.size {
			cow[j] = n.adjusted(i, f)
			return cow
		}
		i -= n.size
	}
	assertThat(false, "position %d beyond digit size", i)
	return nil
}

// treeAdjust rebuilds the root-to-leaf path touching position i. Callers are
// responsible for the bounds check.
func treeAdjust[T any](t ftree[T], i int, f func(T) T) ftree[T] {
	switch t := t.(type) {
	case singleTree[T]:
		return singleTree[T]{n: t.n.adjusted(i, f)}
	case *deepTree[T]:
		if i < t.left.size() {
			return newDeep(t.left.adjusted(i, f), t.spine, t.right)
		}
		i -= t.left.size()
		if spine := t.spine.measure(); i < spine {
			return newDeep(t.left, treeAdjust(t.spine, i, f), t.right)
		} else {
			i -= spine
		}
		return newDeep(t.left, t.spine, t.right.adjusted(i, f))
	}
	assertThat(false, "position %d in an empty tree", i)
	return nil
}

// --- Split -----------------------------------------------------------------

// splitDigit partitions a digit around the entry containing position i.
// The fragments to the left and right of the hit may be empty.
func splitDigit[T any](d digit[T], i int) (digit[T], *node[T], digit[T]) {
	for j, n := range d {
		if i < n.size {
			return d[:j], n, d[j+1:]
		}
		i -= n.size
	}
	assertThat(false, "split position %d beyond digit size", i)
	return nil, nil, nil
}

// splitTree splits a non-empty tree around the entry containing position i,
// 0 ≤ i < t.measure(). At the outermost level the hit entry is the leaf at
// position i. Both result trees are rebuilt only along the search path; all
// other subtrees are shared.
func splitTree[T any](t ftree[T], i int) (ftree[T], *node[T], ftree[T]) {
	switch t := t.(type) {
	case singleTree[T]:
		return emptyTree[T]{}, t.n, emptyTree[T]{}
	case *deepTree[T]:
		if i < t.left.size() {
			tracer().Debugf("split position %d inside left digit", i)
			pre, hit, post := splitDigit(t.left, i)
			return digitToTree(pre), hit, deepL(post, t.spine, t.right)
		}
		i -= t.left.size()
		if spine := t.spine.measure(); i < spine {
			tracer().Debugf("split position %d inside spine", i)
			ml, hit, mr := splitTree(t.spine, i)
			i -= ml.measure()
			pre, x, post := splitDigit(digit[T](hit.children), i)
			return deepR(t.left, ml, pre), x, deepL(post, mr, t.right)
		} else {
			i -= spine
		}
		tracer().Debugf("split position %d inside right digit", i)
		pre, hit, post := splitDigit(t.right, i)
		return deepR(t.left, t.spine, pre), hit, digitToTree(post)
	}
	assertThat(false, "attempt to split an empty tree")
	return nil, nil, nil
}

// --- Concatenation ---------------------------------------------------------

func treeConcat[T any](x, y ftree[T]) ftree[T] {
	return app3(x, nil, y)
}

// app3 merges two trees with a run of loose middle entries in between. Both
// trees contribute their boundary digits to the run, which is repacked into
// 2-3 nodes and spliced between the spines one level down.
func app3[T any](x ftree[T], mid []*node[T], y ftree[T]) ftree[T] {
	switch x := x.(type) {
	case emptyTree[T]:
		return consAll(mid, y)
	case singleTree[T]:
		return treeCons(consAll(mid, y), x.n)
	}
	switch y := y.(type) {
	case emptyTree[T]:
		return snocAll(x, mid)
	case singleTree[T]:
		return treeSnoc(snocAll(x, mid), y.n)
	}
	dx := x.(*deepTree[T])
	dy := y.(*deepTree[T])
	run := make([]*node[T], 0, len(dx.right)+len(mid)+len(dy.left))
	run = append(run, dx.right...)
	run = append(run, mid...)
	run = append(run, dy.left...)
	tracer().Debugf("repacking a seam of %d entries", len(run))
	return newDeep(dx.left, app3(dx.spine, packNodes(run), dy.spine), dy.right)
}

// packNodes regroups a run of 2…12 entries into 2-3 nodes, greedily
// preferring 3s except where the remainder forces a 2.
func packNodes[T any](run []*node[T]) []*node[T] {
	assertThat(len(run) >= 2, "seam needs at least 2 entries, has %d", len(run))
	packed := make([]*node[T], 0, (len(run)+2)/3)
	for len(run) > 4 {
		packed = append(packed, branch(run[0], run[1], run[2]))
		run = run[3:]
	}
	switch len(run) {
	case 2:
		packed = append(packed, branch(run[0], run[1]))
	case 3:
		packed = append(packed, branch(run[0], run[1], run[2]))
	case 4:
		packed = append(packed, branch(run[0], run[1]), branch(run[2], run[3]))
	}
	return packed
}

func consAll[T any](run []*node[T], t ftree[T]) ftree[T] {
	for i := len(run) - 1; i >= 0; i-- {
		t = treeCons(t, run[i])
	}
	return t
}

func snocAll[T any](t ftree[T], run []*node[T]) ftree[T] {
	for _, n := range run {
		t = treeSnoc(t, n)
	}
	return t
}

// --- Folds -----------------------------------------------------------------

func nodeFoldR[T, S any](n *node[T], f func(T, S) S, zero S) S {
	if n.isLeaf() {
		return f(n.value, zero)
	}
	r := zero
	for i := len(n.children) - 1; i >= 0; i-- {
		r = nodeFoldR(n.children[i], f, r)
	}
	return r
}

func nodeFoldL[T, S any](n *node[T], f func(S, T) S, zero S) S {
	if n.isLeaf() {
		return f(zero, n.value)
	}
	r := zero
	for _, ch := range n.children {
		r = nodeFoldL(ch, f, r)
	}
	return r
}

func digitFoldR[T, S any](d digit[T], f func(T, S) S, zero S) S {
	r := zero
	for i := len(d) - 1; i >= 0; i-- {
		r = nodeFoldR(d[i], f, r)
	}
	return r
}

func digitFoldL[T, S any](d digit[T], f func(S, T) S, zero S) S {
	r := zero
	for _, n := range d {
		r = nodeFoldL(n, f, r)
	}
	return r
}

func treeFoldR[T, S any](t ftree[T], f func(T, S) S, zero S) S {
	switch t := t.(type) {
	case singleTree[T]:
		return nodeFoldR(t.n, f, zero)
	case *deepTree[T]:
		r := digitFoldR(t.right, f, zero)
		r = treeFoldR(t.spine, f, r)
		return digitFoldR(t.left, f, r)
	}
	return zero
}

func treeFoldL[T, S any](t ftree[T], f func(S, T) S, zero S) S {
	switch t := t.(type) {
	case singleTree[T]:
		return nodeFoldL(t.n, f, zero)
	case *deepTree[T]:
		r := digitFoldL(t.left, f, zero)
		r = treeFoldL(t.spine, f, r)
		return digitFoldL(t.right, f, r)
	}
	return zero
}

// --- Structure-preserving map ----------------------------------------------

func mapNode[T, S any](n *node[T], f func(T) S) *node[S] {
	if n.isLeaf() {
		return leaf(f(n.value))
	}
	children := make([]*node[S], len(n.children))
	for i, ch := range n.children {
		children[i] = mapNode(ch, f)
	}
	return branch(children...)
}

func mapDigit[T, S any](d digit[T], f func(T) S) digit[S] {
	cow := make(digit[S], len(d))
	for i, n := range d {
		cow[i] = mapNode(n, f)
	}
	return cow
}

func mapTree[T, S any](t ftree[T], f func(T) S) ftree[S] {
	switch t := t.(type) {
	case singleTree[T]:
		return singleTree[S]{n: mapNode(t.n, f)}
	case *deepTree[T]:
		return newDeep(mapDigit(t.left, f), mapTree(t.spine, f), mapDigit(t.right, f))
	}
	return emptyTree[S]{}
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}
