// Package state implements the state monad: a computation that threads a
// value of type S through a chain of steps, each of which may read or replace
// it while producing a result.
package state

import "github.com/lightningnetwork/fp/fn"

// State is a pure transition from an input state to a result and an output
// state.
type State[S, A any] struct {
	transition func(S) (A, S)
}

// New wraps a transition function.
func New[S, A any](f func(S) (A, S)) State[S, A] {
	return State[S, A]{transition: f}
}

// Ret answers a and leaves the state alone.
func Ret[S, A any](a A) State[S, A] {
	return New(func(s S) (A, S) {
		return a, s
	})
}

// Run applies the transition to initial. The zero State answers the zero A
// and leaves the state alone.
func (m State[S, A]) Run(initial S) (A, S) {
	if m.transition == nil {
		var zero A
		return zero, initial
	}

	return m.transition(initial)
}

// Eval runs m and keeps only the result.
func (m State[S, A]) Eval(initial S) A {
	a, _ := m.Run(initial)
	return a
}

// Exec runs m and keeps only the final state.
func (m State[S, A]) Exec(initial S) S {
	_, s := m.Run(initial)
	return s
}

// Bind runs m, then runs the step f picks from its result on the state m
// left behind.
func Bind[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		a, next := m.Run(s)
		return f(a).Run(next)
	})
}

// Then runs m and then next, discarding the result of m.
func Then[S, A, B any](m State[S, A], next State[S, B]) State[S, B] {
	return Bind(m, func(A) State[S, B] {
		return next
	})
}

// Map applies f to the result of m.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return New(func(s S) (B, S) {
		a, next := m.Run(s)
		return f(a), next
	})
}

// Get answers the current state.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) {
		return s, s
	})
}

// Put replaces the state with s.
func Put[S any](s S) State[S, fn.Unit] {
	return New(func(S) (fn.Unit, S) {
		return fn.Unit{}, s
	})
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, fn.Unit] {
	return Bind(Get[S](), func(s S) State[S, fn.Unit] {
		return Put(f(s))
	})
}

// Gets answers f applied to the current state without changing it.
func Gets[S, A any](f func(S) A) State[S, A] {
	return Map(Get[S](), f)
}
