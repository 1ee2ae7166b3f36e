// Package iomonad implements the IO monad: a recipe for an effectful
// computation. Building and composing IO values never performs any effect;
// only Run does, and it does so afresh on every call. Results are not
// memoized.
package iomonad

import (
	"fmt"
	"io"

	goerrors "github.com/go-errors/errors"
	"github.com/lightningnetwork/fp/fn"
)

// IO is a deferred action producing an A. The zero value is an action that
// does nothing and produces the zero A.
type IO[A any] struct {
	action func() (A, error)
}

// New wraps action without running it.
func New[A any](action func() (A, error)) IO[A] {
	return IO[A]{action: action}
}

// Lift wraps an infallible action without running it.
func Lift[A any](f func() A) IO[A] {
	return New(func() (A, error) {
		return f(), nil
	})
}

// Effect wraps an action run only for its side effect.
func Effect(f func()) IO[fn.Unit] {
	return Lift(func() fn.Unit {
		f()
		return fn.Unit{}
	})
}

// Ret is an action that has already resolved to a.
func Ret[A any](a A) IO[A] {
	return New(func() (A, error) {
		return a, nil
	})
}

// Fail does not defer: there is no IO value for a failure, so err is raised
// as a panic right away, carrying the caller's stack.
func Fail[A any](err error) IO[A] {
	panic(goerrors.Wrap(err, 1))
}

// Run performs the action. An error returned by any step of a composed
// action stops it and comes back out of Run.
func (m IO[A]) Run() (A, error) {
	if m.action == nil {
		var zero A
		return zero, nil
	}

	return m.action()
}

// Bind builds the action that runs m, hands its result to f and runs the
// action f returns.
func Bind[A, B any](m IO[A], f func(A) IO[B]) IO[B] {
	return New(func() (B, error) {
		a, err := m.Run()
		if err != nil {
			var zero B
			return zero, err
		}

		return f(a).Run()
	})
}

// Then runs m and then next, discarding the result of m.
func Then[A, B any](m IO[A], next IO[B]) IO[B] {
	return Bind(m, func(A) IO[B] {
		return next
	})
}

// Map applies f to the result of m.
func Map[A, B any](m IO[A], f func(A) B) IO[B] {
	return Bind(m, func(a A) IO[B] {
		return Ret(f(a))
	})
}

// Arrow turns an effectful function into one that returns the effect as an
// IO instead of performing it.
func Arrow[X, A any](f func(X) (A, error)) func(X) IO[A] {
	return func(x X) IO[A] {
		return New(func() (A, error) {
			return f(x)
		})
	}
}

// PrintLn is the action that writes s and a newline to w.
func PrintLn(w io.Writer, s string) IO[fn.Unit] {
	return New(func() (fn.Unit, error) {
		_, err := fmt.Fprintln(w, s)
		return fn.Unit{}, err
	})
}
