// Package maybe implements the Maybe monad: a value that is either present
// (Just) or absent (Nothing).
//
// Absence is its own marker. A Just holding a nil pointer, an empty string or
// any other zero value is still a Just; use FromPtr or FromOk to turn the
// usual Go absence conventions into Nothing explicitly.
package maybe

import (
	"errors"
	"iter"

	goerrors "github.com/go-errors/errors"
	"github.com/lightningnetwork/fp/fn"
)

// ErrFromJustNothing is the error FromJust panics with when called on
// Nothing.
var ErrFromJustNothing = errors.New("maybe: FromJust called on Nothing")

// Maybe holds either a value of type A or nothing at all. The zero value is
// Nothing.
type Maybe[A any] struct {
	isJust bool
	value  A
}

// Just wraps a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{isJust: true, value: a}
}

// Nothing is the absent value.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Ret lifts a into the monad. It is Just.
func Ret[A any](a A) Maybe[A] {
	return Just(a)
}

// Fail drops err and returns Nothing: Maybe has no room for the reason.
func Fail[A any](_ error) Maybe[A] {
	return Nothing[A]()
}

// FromPtr is Nothing for a nil pointer and Just the pointee otherwise.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}

	return Just(*p)
}

// FromOk builds a Maybe from the results of a comma-ok expression such as
// a map lookup or a type assertion.
func FromOk[A any](a A, ok bool) Maybe[A] {
	if !ok {
		return Nothing[A]()
	}

	return Just(a)
}

// IsJust reports whether a value is present.
func (m Maybe[A]) IsJust() bool {
	return m.isJust
}

// IsNothing reports whether the value is absent.
func (m Maybe[A]) IsNothing() bool {
	return !m.isJust
}

// Default returns the held value, or def if there is none.
func (m Maybe[A]) Default(def A) A {
	if m.isJust {
		return m.value
	}

	return def
}

// Unpack ejects the Maybe into the comma-ok idiom.
func (m Maybe[A]) Unpack() (A, bool) {
	return m.value, m.isJust
}

// FromJust returns the held value. Calling it on Nothing is a programming
// error and panics with ErrFromJustNothing.
func (m Maybe[A]) FromJust() A {
	if !m.isJust {
		panic(goerrors.Wrap(ErrFromJustNothing, 1))
	}

	return m.value
}

// Alt returns m if it holds a value and other otherwise.
func (m Maybe[A]) Alt(other Maybe[A]) Maybe[A] {
	if m.isJust {
		return m
	}

	return other
}

// Filter keeps the value only if it satisfies pred.
func (m Maybe[A]) Filter(pred func(A) bool) Maybe[A] {
	if m.isJust && pred(m.value) {
		return m
	}

	return Nothing[A]()
}

// Iter yields the held value, if any. Ranging over several Maybes in nested
// loops and handing the result to FromSeq reads like a comprehension that
// stops at the first Nothing.
func (m Maybe[A]) Iter() iter.Seq[A] {
	return func(yield func(A) bool) {
		if m.isJust {
			yield(m.value)
		}
	}
}

// String renders the Maybe as Just(<value>) or Nothing.
func (m Maybe[A]) String() string {
	if !m.isJust {
		return "Nothing"
	}

	return "Just(" + fn.Repr(m.value) + ")"
}

// FromSeq is Just the first element of s, or Nothing if s is empty.
func FromSeq[A any](s iter.Seq[A]) Maybe[A] {
	for a := range s {
		return Just(a)
	}

	return Nothing[A]()
}

// Bind feeds the held value to f. Nothing short circuits and f is not
// called.
func Bind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.isJust {
		return Nothing[B]()
	}

	return f(m.value)
}

// Map applies f to the held value.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.isJust {
		return Nothing[B]()
	}

	return Just(f(m.value))
}

// Fold is the eliminator: f of the held value, or def for Nothing.
func Fold[A, B any](m Maybe[A], def B, f func(A) B) B {
	if !m.isJust {
		return def
	}

	return f(m.value)
}

// CatMaybes yields the values of the Justs in s, skipping the Nothings.
func CatMaybes[A any](s iter.Seq[Maybe[A]]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for m := range s {
			if m.isJust && !yield(m.value) {
				return
			}
		}
	}
}

// MapMaybes maps f over s and keeps the values of the Justs it returns.
func MapMaybes[X, A any](f func(X) Maybe[A], s iter.Seq[X]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for x := range s {
			if m := f(x); m.isJust && !yield(m.value) {
				return
			}
		}
	}
}
