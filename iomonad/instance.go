package iomonad

import (
	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/monad"
)

// Instance is the monad dictionary for binding an IO[A] into an IO[B].
type Instance[A, B any] struct{}

// Ret is the resolved action.
func (Instance[A, B]) Ret(b B) IO[B] {
	return Ret(b)
}

// Bind is the package level Bind.
func (Instance[A, B]) Bind(m IO[A], f func(A) IO[B]) IO[B] {
	return Bind(m, f)
}

// Fail panics with err, see the package level Fail.
func (Instance[A, B]) Fail(err error) IO[B] {
	return Fail[B](err)
}

// A compile time check to ensure Instance implements the contracts.
var _ monad.MonadFail[int, IO[int], string, IO[string]] = Instance[int, string]{}

// Sequence runs ms in order when the result is run and collects their
// results.
func Sequence[A any](ms []IO[A]) IO[[]A] {
	return monad.Sequence[A, IO[A], IO[[]A]](Instance[A, []A]{}, ms)
}

// Sequence_ runs ms in order for their effects.
func Sequence_[A any](ms []IO[A]) IO[fn.Unit] {
	return monad.Sequence_[A, IO[A], IO[fn.Unit]](Instance[A, fn.Unit]{}, ms)
}

// MapM builds the action running f for every item in order.
func MapM[X, A any](f func(X) IO[A], xs []X) IO[[]A] {
	return monad.MapM[X, A, IO[A], IO[[]A]](Instance[A, []A]{}, f, xs)
}

// MapM_ is MapM for actions run only for their effects, the usual way to
// chain output.
func MapM_[X, A any](f func(X) IO[A], xs []X) IO[fn.Unit] {
	return monad.MapM_[X, A, IO[A], IO[fn.Unit]](
		Instance[A, fn.Unit]{}, f, xs,
	)
}

// FilterM keeps the items the effectful predicate accepts.
func FilterM[X any](pred func(X) IO[bool], xs []X) IO[[]X] {
	return monad.FilterM[X, IO[bool], IO[[]X]](Instance[bool, []X]{}, pred, xs)
}

// Catch calls f now. Its value becomes a resolved action; its error is raised
// through Fail.
func Catch[A any](f func() (A, error)) IO[A] {
	return monad.Catch[A, IO[A]](Instance[A, A]{}, f)
}

// LiftA2 builds the action running ma then mb and combining their results.
func LiftA2[A, B, C any](f func(A, B) C, ma IO[A], mb IO[B]) IO[C] {
	return monad.LiftA2[A, IO[A], B, IO[B], C, IO[C]](
		Instance[A, C]{}, Instance[B, C]{}, f, ma, mb,
	)
}

// ArrowCL composes two IO arrows left to right.
func ArrowCL[A, B, C any](f func(A) IO[B], g func(B) IO[C]) func(A) IO[C] {
	return monad.ArrowCL[A, B, IO[B], C, IO[C]](Instance[B, C]{}, f, g)
}

// ArrowCR composes two IO arrows right to left.
func ArrowCR[A, B, C any](g func(B) IO[C], f func(A) IO[B]) func(A) IO[C] {
	return monad.ArrowCR[A, B, IO[B], C, IO[C]](Instance[B, C]{}, g, f)
}

// Join flattens an action producing an action.
func Join[A any](mm IO[IO[A]]) IO[A] {
	return monad.Join[A, IO[A], IO[IO[A]]](Instance[IO[A], A]{}, mm)
}

// When is m if cond holds and an action doing nothing otherwise.
func When(cond bool, m IO[fn.Unit]) IO[fn.Unit] {
	return monad.When[IO[fn.Unit]](Instance[fn.Unit, fn.Unit]{}, cond, m)
}

// Unless is m unless cond holds.
func Unless(cond bool, m IO[fn.Unit]) IO[fn.Unit] {
	return monad.Unless[IO[fn.Unit]](Instance[fn.Unit, fn.Unit]{}, cond, m)
}
