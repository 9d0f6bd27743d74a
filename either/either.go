package either

/*
{-| The `Either` type represents values with two possibilities:
`Left a` or `Right b`.

# Definition
@docs Either

# Mapping
@docs mapLeft, mapRight

-}
*/

type Either[L, R any] interface {
	Match() Matcher[L, R]
}

type either[L, R any] struct {
	left  L
	right R
	tag   bool // true ⇒ right
}

func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, tag: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

// MapLeft applies f to the left value inside x, if any.
func MapLeft[L, R, S any](f func(L) S, x Either[L, R]) Either[S, R] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
		return Left[S, R](f(l))
	case m.Right(&r):
	}
	return Right[S](r)
}

// MapRight applies f to the right value inside x, if any.
func MapRight[L, R, S any](f func(R) S, x Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := x.Match(); m {
	case m.Left(&l):
	case m.Right(&r):
		return Right[L](f(r))
	}
	return Left[L, S](l)
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !em.e.tag {
		*l = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(r *R) Matcher[L, R] {
	if em.e.tag {
		*r = em.e.right
		return em
	}
	return nil
}
