package maybe

import (
	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/monad"
	"golang.org/x/exp/constraints"
)

// Instance is the monad dictionary for binding a Maybe[A] into a Maybe[B].
type Instance[A, B any] struct{}

// Ret wraps b in Just.
func (Instance[A, B]) Ret(b B) Maybe[B] {
	return Just(b)
}

// Bind is the package level Bind.
func (Instance[A, B]) Bind(m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	return Bind(m, f)
}

// Fail is Nothing.
func (Instance[A, B]) Fail(err error) Maybe[B] {
	return Fail[B](err)
}

// Zero is Nothing.
func (Instance[A, B]) Zero() Maybe[B] {
	return Nothing[B]()
}

// Plus is Alt.
func (Instance[A, B]) Plus(a, b Maybe[B]) Maybe[B] {
	return a.Alt(b)
}

// A compile time check to ensure Instance implements the contracts.
var _ monad.MonadFail[int, Maybe[int], string, Maybe[string]] = Instance[int, string]{}
var _ monad.MonadPlus[int, Maybe[int], string, Maybe[string]] = Instance[int, string]{}

// Sequence collects the values of ms, or is Nothing if any of them is.
func Sequence[A any](ms []Maybe[A]) Maybe[[]A] {
	return monad.Sequence[A, Maybe[A], Maybe[[]A]](Instance[A, []A]{}, ms)
}

// Sequence_ is Just unit unless one of ms is Nothing.
func Sequence_[A any](ms []Maybe[A]) Maybe[fn.Unit] {
	return monad.Sequence_[A, Maybe[A], Maybe[fn.Unit]](
		Instance[A, fn.Unit]{}, ms,
	)
}

// SequenceMap collects the values of a map of Maybes under the same keys.
func SequenceMap[K constraints.Ordered, A any](
	ms map[K]Maybe[A]) Maybe[map[K]A] {

	return monad.SequenceMap[K, A, Maybe[A], Maybe[map[K]A]](
		Instance[A, map[K]A]{}, ms,
	)
}

// MapM applies f to every item and collects the values, stopping at the
// first Nothing.
func MapM[X, A any](f func(X) Maybe[A], xs []X) Maybe[[]A] {
	return monad.MapM[X, A, Maybe[A], Maybe[[]A]](
		Instance[A, []A]{}, f, xs,
	)
}

// MapM_ is MapM discarding the values.
func MapM_[X, A any](f func(X) Maybe[A], xs []X) Maybe[fn.Unit] {
	return monad.MapM_[X, A, Maybe[A], Maybe[fn.Unit]](
		Instance[A, fn.Unit]{}, f, xs,
	)
}

// FilterM keeps the items pred answers Just(true) for.
func FilterM[X any](pred func(X) Maybe[bool], xs []X) Maybe[[]X] {
	return monad.FilterM[X, Maybe[bool], Maybe[[]X]](
		Instance[bool, []X]{}, pred, xs,
	)
}

// Catch is Just the value f returns, or Nothing if it errors or panics.
func Catch[A any](f func() (A, error)) Maybe[A] {
	return monad.Catch[A, Maybe[A]](Instance[A, A]{}, f)
}

// CatchArrow turns a fallible function into a Maybe arrow.
func CatchArrow[X, A any](f func(X) (A, error)) func(X) Maybe[A] {
	return monad.CatchArrow[X, A, Maybe[A]](Instance[A, A]{}, f)
}

// Msum is the first Just in xs, or Nothing.
func Msum[A any](xs []Maybe[A]) Maybe[A] {
	return monad.Msum[Maybe[A]](Instance[A, A]{}, xs)
}

// Mfilter is the method Filter in its free form.
func Mfilter[A any](m Maybe[A], pred func(A) bool) Maybe[A] {
	return monad.Mfilter[A, Maybe[A]](Instance[A, A]{}, m, pred)
}

// Guard is Just unit when cond holds and Nothing otherwise.
func Guard(cond bool) Maybe[fn.Unit] {
	return monad.Guard[Maybe[fn.Unit]](Instance[fn.Unit, fn.Unit]{}, cond)
}

// Ap applies a Maybe function to a Maybe argument.
func Ap[A, B any](mf Maybe[func(A) B], ma Maybe[A]) Maybe[B] {
	return monad.Ap[A, Maybe[A], B, Maybe[B], Maybe[func(A) B]](
		Instance[func(A) B, B]{}, Instance[A, B]{}, mf, ma,
	)
}

// LiftA2 applies f to two Maybe arguments.
func LiftA2[A, B, C any](f func(A, B) C, ma Maybe[A],
	mb Maybe[B]) Maybe[C] {

	return monad.LiftA2[A, Maybe[A], B, Maybe[B], C, Maybe[C]](
		Instance[A, C]{}, Instance[B, C]{}, f, ma, mb,
	)
}

// ApSlice applies f to the values of margs if they are all present.
func ApSlice[A, B any](f func([]A) B, margs ...Maybe[A]) Maybe[B] {
	return monad.ApSlice[A, Maybe[A], Maybe[[]A], B, Maybe[B]](
		Instance[A, []A]{}, Instance[[]A, B]{}, f, margs,
	)
}

// ApMap applies f to the values of margs if they are all present.
func ApMap[K constraints.Ordered, A, B any](f func(map[K]A) B,
	margs map[K]Maybe[A]) Maybe[B] {

	return monad.ApMap[K, A, Maybe[A], Maybe[map[K]A], B, Maybe[B]](
		Instance[A, map[K]A]{}, Instance[map[K]A, B]{}, f, margs,
	)
}

// ArrowCL composes two Maybe arrows left to right.
func ArrowCL[A, B, C any](f func(A) Maybe[B],
	g func(B) Maybe[C]) func(A) Maybe[C] {

	return monad.ArrowCL[A, B, Maybe[B], C, Maybe[C]](
		Instance[B, C]{}, f, g,
	)
}

// ArrowCR composes two Maybe arrows right to left.
func ArrowCR[A, B, C any](g func(B) Maybe[C],
	f func(A) Maybe[B]) func(A) Maybe[C] {

	return monad.ArrowCR[A, B, Maybe[B], C, Maybe[C]](
		Instance[B, C]{}, g, f,
	)
}

// Join flattens a nested Maybe.
func Join[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	return monad.Join[A, Maybe[A], Maybe[Maybe[A]]](
		Instance[Maybe[A], A]{}, mm,
	)
}

// When is m if cond holds and Just unit otherwise.
func When(cond bool, m Maybe[fn.Unit]) Maybe[fn.Unit] {
	return monad.When[Maybe[fn.Unit]](Instance[fn.Unit, fn.Unit]{}, cond, m)
}

// Unless is m if cond does not hold and Just unit otherwise.
func Unless(cond bool, m Maybe[fn.Unit]) Maybe[fn.Unit] {
	return monad.Unless[Maybe[fn.Unit]](
		Instance[fn.Unit, fn.Unit]{}, cond, m,
	)
}
