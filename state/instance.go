package state

import (
	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/monad"
)

// Instance is the monad dictionary for binding a State[S, A] into a
// State[S, B].
type Instance[S, A, B any] struct{}

// Ret answers b.
func (Instance[S, A, B]) Ret(b B) State[S, B] {
	return Ret[S](b)
}

// Bind is the package level Bind.
func (Instance[S, A, B]) Bind(m State[S, A],
	f func(A) State[S, B]) State[S, B] {

	return Bind(m, f)
}

// A compile time check to ensure Instance implements the contract.
var _ monad.Monad[int, State[string, int], bool, State[string, bool]] = Instance[string, int, bool]{}

// Sequence runs ms one after another, threading the state through them.
func Sequence[S, A any](ms []State[S, A]) State[S, []A] {
	return monad.Sequence[A, State[S, A], State[S, []A]](
		Instance[S, A, []A]{}, ms,
	)
}

// Sequence_ is Sequence discarding the results.
func Sequence_[S, A any](ms []State[S, A]) State[S, fn.Unit] {
	return monad.Sequence_[A, State[S, A], State[S, fn.Unit]](
		Instance[S, A, fn.Unit]{}, ms,
	)
}

// MapM runs the step f builds for every item in order.
func MapM[X, S, A any](f func(X) State[S, A], xs []X) State[S, []A] {
	return monad.MapM[X, A, State[S, A], State[S, []A]](
		Instance[S, A, []A]{}, f, xs,
	)
}

// MapM_ is MapM discarding the results.
func MapM_[X, S, A any](f func(X) State[S, A], xs []X) State[S, fn.Unit] {
	return monad.MapM_[X, A, State[S, A], State[S, fn.Unit]](
		Instance[S, A, fn.Unit]{}, f, xs,
	)
}

// FilterM keeps the items whose stateful predicate answers true.
func FilterM[X, S any](pred func(X) State[S, bool], xs []X) State[S, []X] {
	return monad.FilterM[X, State[S, bool], State[S, []X]](
		Instance[S, bool, []X]{}, pred, xs,
	)
}

// When runs m only if cond holds.
func When[S any](cond bool, m State[S, fn.Unit]) State[S, fn.Unit] {
	return monad.When[State[S, fn.Unit]](
		Instance[S, fn.Unit, fn.Unit]{}, cond, m,
	)
}

// Unless runs m only if cond does not hold.
func Unless[S any](cond bool, m State[S, fn.Unit]) State[S, fn.Unit] {
	return monad.Unless[State[S, fn.Unit]](
		Instance[S, fn.Unit, fn.Unit]{}, cond, m,
	)
}

// ArrowCL composes two stateful arrows left to right.
func ArrowCL[S, A, B, C any](f func(A) State[S, B],
	g func(B) State[S, C]) func(A) State[S, C] {

	return monad.ArrowCL[A, B, State[S, B], C, State[S, C]](
		Instance[S, B, C]{}, f, g,
	)
}
