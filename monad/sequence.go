package monad

import (
	"github.com/lightningnetwork/fp/fn"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sequence runs ms left to right and collects their values. The first
// failure short circuits and the values gathered so far are dropped.
func Sequence[A, MA, MS any](d Monad[A, MA, []A, MS], ms []MA) MS {
	return MapM(d, fn.Iden[MA], ms)
}

// Sequence_ runs ms left to right for their effects only.
func Sequence_[A, MA, MU any](d Monad[A, MA, fn.Unit, MU], ms []MA) MU {
	return MapM_(d, fn.Iden[MA], ms)
}

// MapM applies the arrow f to every item and sequences the results. f is
// only called for an item once every item before it succeeded.
func MapM[X, A, MA, MS any](d Monad[A, MA, []A, MS], f func(X) MA,
	xs []X) MS {

	return mapM(d, f, xs, []A{})
}

func mapM[X, A, MA, MS any](d Monad[A, MA, []A, MS], f func(X) MA, xs []X,
	acc []A) MS {

	if len(xs) == 0 {
		return d.Ret(acc)
	}

	return d.Bind(f(xs[0]), func(a A) MS {
		// Clip before appending: a deferred action may be run more than
		// once and each run must build its own result.
		return mapM(d, f, xs[1:], append(slices.Clip(acc), a))
	})
}

// MapM_ is MapM for arrows run only for their effects.
func MapM_[X, A, MA, MU any](d Monad[A, MA, fn.Unit, MU], f func(X) MA,
	xs []X) MU {

	if len(xs) == 0 {
		return d.Ret(fn.Unit{})
	}

	return d.Bind(f(xs[0]), func(A) MU {
		return MapM_(d, f, xs[1:])
	})
}

// FilterM keeps the items whose monadic predicate answers true, in order.
func FilterM[X, MB, MS any](d Monad[bool, MB, []X, MS], pred func(X) MB,
	xs []X) MS {

	return filterM(d, pred, xs, []X{})
}

func filterM[X, MB, MS any](d Monad[bool, MB, []X, MS], pred func(X) MB,
	xs []X, acc []X) MS {

	if len(xs) == 0 {
		return d.Ret(acc)
	}

	x := xs[0]
	return d.Bind(pred(x), func(keep bool) MS {
		next := slices.Clip(acc)
		if keep {
			next = append(next, x)
		}

		return filterM(d, pred, xs[1:], next)
	})
}

// SequenceMap is Sequence for a map of actions. Actions run in ascending key
// order, so the failure reported for a map with several failures is the one
// with the smallest key. On success the result has exactly the input's keys.
func SequenceMap[K constraints.Ordered, A, MA, MM any](
	d Monad[A, MA, map[K]A, MM], ms map[K]MA) MM {

	keys := maps.Keys(ms)
	slices.Sort(keys)

	return sequenceMap(d, ms, keys, make(map[K]A, len(ms)))
}

func sequenceMap[K constraints.Ordered, A, MA, MM any](
	d Monad[A, MA, map[K]A, MM], ms map[K]MA, keys []K,
	acc map[K]A) MM {

	if len(keys) == 0 {
		return d.Ret(acc)
	}

	key := keys[0]
	return d.Bind(ms[key], func(a A) MM {
		next := maps.Clone(acc)
		next[key] = a

		return sequenceMap(d, ms, keys[1:], next)
	})
}
