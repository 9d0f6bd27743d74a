package seq

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fseq/maybe"
)

// Seq is an immutable persistent sequence. An empty instance is usable as an
// empty sequence, i.e. this is legal:
//
//	s := seq.Seq[int]{}.Snoc(1).Snoc(2)
//
// returning a sequence ⟨1 2⟩. Every operation returns a new incarnation of
// the sequence and leaves the receiver untouched, so older incarnations
// remain valid and may be read concurrently without synchronization.
type Seq[T any] struct {
	tree ftree[T]
}

// Empty creates an empty sequence.
func Empty[T any]() Seq[T] {
	return Seq[T]{tree: emptyTree[T]{}}
}

// Singleton creates a one-element sequence.
func Singleton[T any](x T) Seq[T] {
	return Seq[T]{tree: singleTree[T]{n: leaf(x)}}
}

// FromSlice creates a sequence holding the elements of xs in order.
func FromSlice[T any](xs []T) Seq[T] {
	t := ftree[T](emptyTree[T]{})
	for _, x := range xs {
		t = treeSnoc(t, leaf(x))
	}
	return Seq[T]{tree: t}
}

// ft guards against the zero value, which carries a nil tree.
func (s Seq[T]) ft() ftree[T] {
	if s.tree == nil {
		return emptyTree[T]{}
	}
	return s.tree
}

// --- Length and bounds -----------------------------------------------------

// Len returns the number of elements. The count is cached at the tree root,
// making this O(1).
func (s Seq[T]) Len() int {
	return s.ft().measure()
}

// IsEmpty returns true iff the sequence contains no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.Len() == 0
}

// InBounds returns true iff i addresses an element, i.e. 0 ≤ i < s.Len().
func (s Seq[T]) InBounds(i int) bool {
	return i >= 0 && i < s.Len()
}

// --- Ends ------------------------------------------------------------------

// Cons prepends an element, amortized O(1).
func (s Seq[T]) Cons(x T) Seq[T] {
	return Seq[T]{tree: treeCons(s.ft(), leaf(x))}
}

// Snoc appends an element, amortized O(1).
func (s Seq[T]) Snoc(x T) Seq[T] {
	return Seq[T]{tree: treeSnoc(s.ft(), leaf(x))}
}

// Uncons splits off the first element. ok is false for an empty sequence.
func (s Seq[T]) Uncons() (T, Seq[T], bool) {
	if n, rest, ok := treeUncons(s.ft()); ok {
		return n.value, Seq[T]{tree: rest}, true
	}
	var none T
	return none, Seq[T]{}, false
}

// Unsnoc splits off the last element. ok is false for an empty sequence.
func (s Seq[T]) Unsnoc() (Seq[T], T, bool) {
	if n, rest, ok := treeUnsnoc(s.ft()); ok {
		return Seq[T]{tree: rest}, n.value, true
	}
	var none T
	return Seq[T]{}, none, false
}

// Head returns the first element, or Nothing for an empty sequence.
func (s Seq[T]) Head() maybe.Maybe[T] {
	if x, _, ok := s.Uncons(); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// Last returns the last element, or Nothing for an empty sequence.
func (s Seq[T]) Last() maybe.Maybe[T] {
	if _, x, ok := s.Unsnoc(); ok {
		return maybe.Just(x)
	}
	return maybe.Nothing[T]()
}

// Tail returns the sequence without its first element. The tail of an empty
// sequence is the empty sequence.
func (s Seq[T]) Tail() Seq[T] {
	if _, rest, ok := s.Uncons(); ok {
		return rest
	}
	return Seq[T]{}
}

// Init returns the sequence without its last element. The init of an empty
// sequence is the empty sequence.
func (s Seq[T]) Init() Seq[T] {
	if rest, _, ok := s.Unsnoc(); ok {
		return rest
	}
	return Seq[T]{}
}

// --- Random access ---------------------------------------------------------

// Index returns the element at position i, or Nothing if i is out of
// bounds. The search walks cached subtree sizes, O(log n).
func (s Seq[T]) Index(i int) maybe.Maybe[T] {
	if !s.InBounds(i) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(treeAt(s.ft(), i))
}

// Adjust replaces the element at position i with f applied to it. An
// out-of-bounds i returns the sequence unchanged. Only the root-to-leaf
// path touching position i is rebuilt; all other subtrees are shared with
// the receiver.
func (s Seq[T]) Adjust(f func(T) T, i int) Seq[T] {
	if !s.InBounds(i) {
		return s
	}
	return Seq[T]{tree: treeAdjust(s.ft(), i, f)}
}

// --- Split, take, drop -----------------------------------------------------

// SplitAt partitions the sequence into the first i elements and the
// remainder. i is clamped to [0, s.Len()], so any argument is legal.
func (s Seq[T]) SplitAt(i int) (Seq[T], Seq[T]) {
	if i <= 0 {
		return Seq[T]{}, s
	}
	if i >= s.Len() {
		return s, Seq[T]{}
	}
	left, hit, right := splitTree(s.ft(), i)
	return Seq[T]{tree: left}, Seq[T]{tree: treeCons(right, hit)}
}

// Take returns the first n elements, with n clamped to [0, s.Len()].
func (s Seq[T]) Take(n int) Seq[T] {
	left, _ := s.SplitAt(n)
	return left
}

// Drop returns the sequence without its first n elements, with n clamped
// to [0, s.Len()].
func (s Seq[T]) Drop(n int) Seq[T] {
	_, right := s.SplitAt(n)
	return right
}

// --- Concatenation ---------------------------------------------------------

// Concat appends other, O(log(min(m,n))). The empty sequence is a two-sided
// identity, making sequences a monoid under Concat.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	return Seq[T]{tree: treeConcat(s.ft(), other.ft())}
}

// --- Filter ----------------------------------------------------------------

// Filter returns the elements satisfying p, in their original order. O(n),
// the result is rebuilt from scratch.
func (s Seq[T]) Filter(p func(T) bool) Seq[T] {
	return treeFoldL(s.ft(), func(acc Seq[T], x T) Seq[T] {
		if p(x) {
			return acc.Snoc(x)
		}
		return acc
	}, Empty[T]())
}

// --- Conversion and formatting ---------------------------------------------

// Slice returns the elements as a plain Go slice. FromSlice and Slice are
// mutual inverses.
func (s Seq[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	return treeFoldL(s.ft(), func(acc []T, x T) []T {
		return append(acc, x)
	}, out)
}

func (s Seq[T]) String() string {
	b := strings.Builder{}
	b.WriteString("⟨")
	treeFoldL(s.ft(), func(first bool, x T) bool {
		if !first {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", x)
		return false
	}, true)
	b.WriteString("⟩")
	return b.String()
}
