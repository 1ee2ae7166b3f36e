package either

import (
	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/monad"
	"golang.org/x/exp/constraints"
)

// Instance is the monad dictionary for binding an Either[E, A] into an
// Either[E, B].
type Instance[E, A, B any] struct{}

// Ret wraps b in Right.
func (Instance[E, A, B]) Ret(b B) Either[E, B] {
	return Right[E](b)
}

// Bind is the package level Bind.
func (Instance[E, A, B]) Bind(m Either[E, A],
	f func(A) Either[E, B]) Either[E, B] {

	return Bind(m, f)
}

// FailInstance is the dictionary for Eithers whose Left is an error, the
// only ones that can absorb a failure from Catch.
type FailInstance[A, B any] struct {
	Instance[error, A, B]
}

// Fail carries err on the Left.
func (FailInstance[A, B]) Fail(err error) Either[error, B] {
	return Fail[B](err)
}

// A compile time check to ensure the dictionaries implement the contracts.
var _ monad.Monad[int, Either[string, int], bool, Either[string, bool]] = Instance[string, int, bool]{}
var _ monad.MonadFail[int, Either[error, int], bool, Either[error, bool]] = FailInstance[int, bool]{}

// Sequence collects the Right values of ms, or returns the first Left.
func Sequence[E, A any](ms []Either[E, A]) Either[E, []A] {
	return monad.Sequence[A, Either[E, A], Either[E, []A]](
		Instance[E, A, []A]{}, ms,
	)
}

// Sequence_ is Right unit unless one of ms is a Left.
func Sequence_[E, A any](ms []Either[E, A]) Either[E, fn.Unit] {
	return monad.Sequence_[A, Either[E, A], Either[E, fn.Unit]](
		Instance[E, A, fn.Unit]{}, ms,
	)
}

// SequenceMap collects the Right values of a map of Eithers under the same
// keys. With several Lefts the one under the smallest key is returned.
func SequenceMap[K constraints.Ordered, E, A any](
	ms map[K]Either[E, A]) Either[E, map[K]A] {

	return monad.SequenceMap[K, A, Either[E, A], Either[E, map[K]A]](
		Instance[E, A, map[K]A]{}, ms,
	)
}

// MapM applies f to every item and collects the Right values, stopping at
// the first Left.
func MapM[X, E, A any](f func(X) Either[E, A], xs []X) Either[E, []A] {
	return monad.MapM[X, A, Either[E, A], Either[E, []A]](
		Instance[E, A, []A]{}, f, xs,
	)
}

// MapM_ is MapM discarding the values.
func MapM_[X, E, A any](f func(X) Either[E, A], xs []X) Either[E, fn.Unit] {
	return monad.MapM_[X, A, Either[E, A], Either[E, fn.Unit]](
		Instance[E, A, fn.Unit]{}, f, xs,
	)
}

// FilterM keeps the items pred answers Right(true) for.
func FilterM[X, E any](pred func(X) Either[E, bool],
	xs []X) Either[E, []X] {

	return monad.FilterM[X, Either[E, bool], Either[E, []X]](
		Instance[E, bool, []X]{}, pred, xs,
	)
}

// Catch is Right the value f returns, or Left the error it returns or the
// panic it raises.
func Catch[A any](f func() (A, error)) Either[error, A] {
	return monad.Catch[A, Either[error, A]](FailInstance[A, A]{}, f)
}

// CatchArrow turns a fallible function into an Either arrow.
func CatchArrow[X, A any](f func(X) (A, error)) func(X) Either[error, A] {
	return monad.CatchArrow[X, A, Either[error, A]](FailInstance[A, A]{}, f)
}

// Ap applies an Either function to an Either argument.
func Ap[E, A, B any](mf Either[E, func(A) B],
	ma Either[E, A]) Either[E, B] {

	return monad.Ap[A, Either[E, A], B, Either[E, B], Either[E, func(A) B]](
		Instance[E, func(A) B, B]{}, Instance[E, A, B]{}, mf, ma,
	)
}

// LiftA2 applies f to two Either arguments, failing with the first Left.
func LiftA2[E, A, B, C any](f func(A, B) C, ma Either[E, A],
	mb Either[E, B]) Either[E, C] {

	return monad.LiftA2[A, Either[E, A], B, Either[E, B], C, Either[E, C]](
		Instance[E, A, C]{}, Instance[E, B, C]{}, f, ma, mb,
	)
}

// ApSlice applies f to the Right values of margs, or returns the first Left.
func ApSlice[E, A, B any](f func([]A) B,
	margs ...Either[E, A]) Either[E, B] {

	return monad.ApSlice[A, Either[E, A], Either[E, []A], B, Either[E, B]](
		Instance[E, A, []A]{}, Instance[E, []A, B]{}, f, margs,
	)
}

// ArrowCL composes two Either arrows left to right.
func ArrowCL[E, A, B, C any](f func(A) Either[E, B],
	g func(B) Either[E, C]) func(A) Either[E, C] {

	return monad.ArrowCL[A, B, Either[E, B], C, Either[E, C]](
		Instance[E, B, C]{}, f, g,
	)
}

// ArrowCR composes two Either arrows right to left.
func ArrowCR[E, A, B, C any](g func(B) Either[E, C],
	f func(A) Either[E, B]) func(A) Either[E, C] {

	return monad.ArrowCR[A, B, Either[E, B], C, Either[E, C]](
		Instance[E, B, C]{}, g, f,
	)
}

// Join flattens a nested Either.
func Join[E, A any](mm Either[E, Either[E, A]]) Either[E, A] {
	return monad.Join[A, Either[E, A], Either[E, Either[E, A]]](
		Instance[E, Either[E, A], A]{}, mm,
	)
}
