package fseq

// --- Matchable -------------------------------------------------------------

// Matchable is an interface for types which can be pattern-matched.
type Matchable[T, A, B comparable] interface {
	Matches(other T) bool
	Decompose() (A, B)
}

// --- Pair ------------------------------------------------------------------

// Pair is an ordered product of two values.
type Pair[A, B comparable] struct {
	Left  A
	Right B
}

// P constructs a Pair from its two components.
func P[A, B comparable](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

func (p Pair[A, B]) Matches(other Pair[A, B]) bool {
	return p.Left == other.Left && p.Right == other.Right
}

func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

var _ Matchable[Pair[int, int], int, int] = Pair[int, int]{1, 2}
var _ Matchable[Pair[int, int], int, int] = P(1, 2)
