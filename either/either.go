// Package either implements the Either monad. An Either[E, A] is a Left
// carrying an E, by convention the reason a computation failed, or a Right
// carrying the A it produced. Binding on a Left is a no-op, so a chain of
// functions returning Eithers stops at the first failure and hands it to
// whoever eliminates the result with Elim or Default.
package either

import (
	"iter"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/maybe"
)

// Either is a Left(E) or a Right(A). The zero value is a Left holding the
// zero E.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left builds the failure variant. The right type comes first so it can be
// given explicitly while E is inferred: Left[int](err).
func Left[A, E any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right builds the success variant. The left type comes first so it can be
// given explicitly while A is inferred: Right[error](42).
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// Ret lifts a into the monad. It is Right.
func Ret[E, A any](a A) Either[E, A] {
	return Right[E](a)
}

// Fail carries err on the Left.
func Fail[A any](err error) Either[error, A] {
	return Left[A](err)
}

// FromResult builds an Either from a Go style (value, error) pair.
func FromResult[A any](a A, err error) Either[error, A] {
	if err != nil {
		return Fail[A](err)
	}

	return Right[error](a)
}

// IsLeft reports whether m is a Left.
func (m Either[E, A]) IsLeft() bool {
	return !m.isRight
}

// IsRight reports whether m is a Right.
func (m Either[E, A]) IsRight() bool {
	return m.isRight
}

// Default returns the Right value, or def for a Left.
func (m Either[E, A]) Default(def A) A {
	if m.isRight {
		return m.right
	}

	return def
}

// Swap turns a Left into a Right and vice versa.
func (m Either[E, A]) Swap() Either[A, E] {
	return Either[A, E]{isRight: !m.isRight, left: m.right, right: m.left}
}

// String renders m as Left(<value>) or Right(<value>).
func (m Either[E, A]) String() string {
	if m.isRight {
		return "Right(" + fn.Repr(m.right) + ")"
	}

	return "Left(" + fn.Repr(m.left) + ")"
}

// Elim is the total eliminator: l of the Left value or r of the Right value,
// whichever m holds. The result leaves the monad.
func Elim[E, A, C any](m Either[E, A], l func(E) C, r func(A) C) C {
	if m.isRight {
		return r(m.right)
	}

	return l(m.left)
}

// Bind feeds the Right value to f. A Left is passed through untouched and f
// is not called.
func Bind[E, A, B any](m Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if !m.isRight {
		return Left[B](m.left)
	}

	return f(m.right)
}

// Map applies f to the Right value.
func Map[E, A, B any](m Either[E, A], f func(A) B) Either[E, B] {
	if !m.isRight {
		return Left[B](m.left)
	}

	return Right[E](f(m.right))
}

// MapLeft applies f to the Left value.
func MapLeft[E, A, F any](m Either[E, A], f func(E) F) Either[F, A] {
	if m.isRight {
		return Right[F](m.right)
	}

	return Left[A](f(m.left))
}

// ToMaybe forgets the Left value.
func ToMaybe[E, A any](m Either[E, A]) maybe.Maybe[A] {
	if !m.isRight {
		return maybe.Nothing[A]()
	}

	return maybe.Just(m.right)
}

// FromMaybe uses e as the Left value for Nothing.
func FromMaybe[E, A any](m maybe.Maybe[A], e E) Either[E, A] {
	a, ok := m.Unpack()
	if !ok {
		return Left[A](e)
	}

	return Right[E](a)
}

// Lefts is a lazy view of the Lefts in s.
func Lefts[E, A any](s iter.Seq[Either[E, A]]) iter.Seq[Either[E, A]] {
	return filter(s, Either[E, A].IsLeft)
}

// Rights is a lazy view of the Rights in s.
func Rights[E, A any](s iter.Seq[Either[E, A]]) iter.Seq[Either[E, A]] {
	return filter(s, Either[E, A].IsRight)
}

// LeftValues yields the values held by the Lefts in s.
func LeftValues[E, A any](s iter.Seq[Either[E, A]]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for m := range s {
			if !m.isRight && !yield(m.left) {
				return
			}
		}
	}
}

// RightValues yields the values held by the Rights in s.
func RightValues[E, A any](s iter.Seq[Either[E, A]]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for m := range s {
			if m.isRight && !yield(m.right) {
				return
			}
		}
	}
}

func filter[E, A any](s iter.Seq[Either[E, A]],
	keep func(Either[E, A]) bool) iter.Seq[Either[E, A]] {

	return func(yield func(Either[E, A]) bool) {
		for m := range s {
			if keep(m) && !yield(m) {
				return
			}
		}
	}
}
