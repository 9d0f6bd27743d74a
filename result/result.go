package result

/*
{-| A `Result` is the result of a computation that may fail.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2, map3, map4, map5

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}
*/

import (
	"github.com/npillmayer/fseq/maybe"
)

type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
}

type result[T any] struct {
	value T
	err   error
}

func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// Map applies f to the value inside x, if x is not an error.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

// ToMaybe drops the error information from x.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	case m.Err(&err):
	}
	return maybe.Nothing[T]()
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
