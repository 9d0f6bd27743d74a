package seq

import (
	"github.com/npillmayer/fseq"
	"github.com/npillmayer/fseq/either"
	"github.com/npillmayer/fseq/maybe"
	"github.com/npillmayer/fseq/result"
)

// Type-changing operations live here as free functions: Go methods cannot
// introduce additional type parameters.

// Map applies f to every element, preserving order and tree structure.
func Map[T, S any](f func(T) S, s Seq[T]) Seq[S] {
	return Seq[S]{tree: mapTree(s.ft(), f)}
}

// Bind concatenates f(x) for every element x, in sequence order.
func Bind[T, S any](f func(T) Seq[S], s Seq[T]) Seq[S] {
	return treeFoldL(s.ft(), func(acc Seq[S], x T) Seq[S] {
		return acc.Concat(f(x))
	}, Empty[S]())
}

// Ap combines every function in fs with every element of xs, concatenating
// per-function results in row-major order (outer loop over fs).
func Ap[T, S any](fs Seq[func(T) S], xs Seq[T]) Seq[S] {
	return Bind(func(f func(T) S) Seq[S] {
		return Map(f, xs)
	}, fs)
}

// FoldR folds the sequence right-to-left: f(x0, f(x1, … f(xn-1, zero))).
func FoldR[T, S any](f func(T, S) S, zero S, s Seq[T]) S {
	return treeFoldR(s.ft(), f, zero)
}

// FoldL folds the sequence left-to-right: f(… f(f(zero, x0), x1) …, xn-1).
func FoldL[T, S any](f func(S, T) S, zero S, s Seq[T]) S {
	return treeFoldL(s.ft(), f, zero)
}

// Equal compares two sequences element-wise. Internal tree shape does not
// matter: sequences holding the same elements in the same order are equal.
func Equal[T comparable](x, y Seq[T]) bool {
	if x.Len() != y.Len() {
		return false
	}
	xs, ys := x.Slice(), y.Slice()
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

// Zip pairs up elements of xs and ys positionally. The result has the length
// of the shorter input.
func Zip[A, B comparable](xs Seq[A], ys Seq[B]) Seq[fseq.Pair[A, B]] {
	n := xs.Len()
	if ys.Len() < n {
		n = ys.Len()
	}
	as, bs := xs.Slice(), ys.Slice()
	out := Empty[fseq.Pair[A, B]]()
	for i := 0; i < n; i++ {
		out = out.Snoc(fseq.P(as[i], bs[i]))
	}
	return out
}

// PartitionWith classifies every element through f and collects Left and
// Right results into two sequences, each in original relative order.
func PartitionWith[T, L, R any](f func(T) either.Either[L, R], s Seq[T]) (Seq[L], Seq[R]) {
	ls, rs := Empty[L](), Empty[R]()
	for _, x := range s.Slice() {
		var l L
		var r R
		switch m := f(x).Match(); m {
		case m.Left(&l):
			ls = ls.Snoc(l)
		case m.Right(&r):
			rs = rs.Snoc(r)
		}
	}
	return ls, rs
}

// TraverseMaybe applies f to every element and collects the results, or
// returns Nothing as soon as f does.
func TraverseMaybe[T, S any](f func(T) maybe.Maybe[S], s Seq[T]) maybe.Maybe[Seq[S]] {
	out := Empty[S]()
	for _, x := range s.Slice() {
		var v S
		switch m := f(x).Match(); m {
		case m.Just(&v):
			out = out.Snoc(v)
		case m.Nothing():
			return maybe.Nothing[Seq[S]]()
		}
	}
	return maybe.Just(out)
}

// TraverseResult applies f to every element and collects the results, or
// returns the first error f produces.
func TraverseResult[T, S any](f func(T) result.Result[S], s Seq[T]) result.Result[Seq[S]] {
	out := Empty[S]()
	for _, x := range s.Slice() {
		var v S
		var err error
		switch m := f(x).Match(); m {
		case m.Ok(&v):
			out = out.Snoc(v)
		case m.Err(&err):
			return result.Err[Seq[S]](err)
		}
	}
	return result.Ok(out)
}
