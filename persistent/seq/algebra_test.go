package seq_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/fseq"
	"github.com/npillmayer/fseq/either"
	"github.com/npillmayer/fseq/maybe"
	"github.com/npillmayer/fseq/persistent/seq"
	"github.com/npillmayer/fseq/result"
)

func TestMapChangesType(t *testing.T) {
	s := seq.FromSlice([]int{1, 2, 3})
	got := seq.Map(strconv.Itoa, s).Slice()
	want := []string{"1", "2", "3"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected element %d to be %q, is %q", i, want[i], got[i])
		}
	}
}

func TestBindFlattensInOrder(t *testing.T) {
	s := seq.FromSlice([]int{1, 2, 3})
	twice := func(n int) seq.Seq[int] { return seq.FromSlice([]int{n, n * 10}) }
	want := seq.FromSlice([]int{1, 10, 2, 20, 3, 30})
	if got := seq.Bind(twice, s); !seq.Equal(got, want) {
		t.Errorf("expected bind to flatten in order, is %s", got)
	}
	if !seq.Bind(twice, seq.Empty[int]()).IsEmpty() {
		t.Error("expected bind over empty to be empty, isn't")
	}
}

func TestApRowMajorOrder(t *testing.T) {
	fs := seq.FromSlice([]func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 10 },
	})
	xs := seq.FromSlice([]int{1, 2})
	// outer loop over functions: all results of f0, then all of f1
	want := seq.FromSlice([]int{2, 3, 10, 20})
	if got := seq.Ap(fs, xs); !seq.Equal(got, want) {
		t.Errorf("expected row-major application order, is %s", got)
	}
}

func TestZip(t *testing.T) {
	xs := seq.FromSlice([]int{1, 2, 3})
	ys := seq.FromSlice([]string{"a", "b"})
	zipped := seq.Zip(xs, ys)
	if zipped.Len() != 2 {
		t.Fatalf("expected zip length to be the shorter input's, is %d", zipped.Len())
	}
	want := []fseq.Pair[int, string]{fseq.P(1, "a"), fseq.P(2, "b")}
	for i, p := range zipped.Slice() {
		if !p.Matches(want[i]) {
			t.Errorf("expected pair %d to be %v, is %v", i, want[i], p)
		}
	}
}

func TestPartitionWith(t *testing.T) {
	classify := func(n int) either.Either[int, string] {
		if n%2 == 0 {
			return either.Left[int, string](n)
		}
		return either.Right[int](strconv.Itoa(n))
	}
	evens, odds := seq.PartitionWith(classify, seq.FromSlice([]int{1, 2, 3, 4, 5}))
	if !seq.Equal(evens, seq.FromSlice([]int{2, 4})) {
		t.Errorf("expected evens ⟨2 4⟩, is %s", evens)
	}
	if !seq.Equal(odds, seq.FromSlice([]string{"1", "3", "5"})) {
		t.Errorf("expected odds ⟨1 3 5⟩, is %s", odds)
	}
}

func TestTraverseMaybe(t *testing.T) {
	positive := func(n int) maybe.Maybe[int] {
		if n > 0 {
			return maybe.Just(n)
		}
		return maybe.Nothing[int]()
	}
	all := seq.TraverseMaybe(positive, seq.FromSlice([]int{1, 2, 3}))
	var got seq.Seq[int]
	switch m := all.Match(); m {
	case m.Just(&got):
	case m.Nothing():
		t.Fatal("expected traversal of all-positive sequence to succeed, didn't")
	}
	if !seq.Equal(got, seq.FromSlice([]int{1, 2, 3})) {
		t.Errorf("expected traversal to keep elements, is %s", got)
	}

	none := seq.TraverseMaybe(positive, seq.FromSlice([]int{1, -2, 3}))
	switch m := none.Match(); m {
	case m.Just(&got):
		t.Error("expected traversal with a negative element to be Nothing, isn't")
	case m.Nothing():
	}
}

func TestTraverseResult(t *testing.T) {
	parse := func(s string) result.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Err[int](errors.New("not a number: " + s))
		}
		return result.Ok(n)
	}
	ok := seq.TraverseResult(parse, seq.FromSlice([]string{"1", "2", "3"}))
	var got seq.Seq[int]
	var err error
	switch m := ok.Match(); m {
	case m.Ok(&got):
	case m.Err(&err):
		t.Fatalf("expected traversal of numeric strings to succeed, didn't: %v", err)
	}
	if !seq.Equal(got, seq.FromSlice([]int{1, 2, 3})) {
		t.Errorf("expected parsed sequence ⟨1 2 3⟩, is %s", got)
	}

	bad := seq.TraverseResult(parse, seq.FromSlice([]string{"1", "two", "3"}))
	switch m := bad.Match(); m {
	case m.Ok(&got):
		t.Error("expected traversal with a malformed element to fail, didn't")
	case m.Err(&err):
	}
	if err == nil {
		t.Error("expected error from failed traversal to be non-nil, isn't")
	}
}
