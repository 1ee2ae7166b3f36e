package monad

import "golang.org/x/exp/constraints"

// Ap applies a wrapped function to a wrapped argument. Two dictionaries are
// needed because the function and the argument are bound separately.
func Ap[A, MA, B, MB, MF any](df Monad[func(A) B, MF, B, MB],
	da Monad[A, MA, B, MB], mf MF, ma MA) MB {

	return df.Bind(mf, func(f func(A) B) MB {
		return Lift(da, f, ma)
	})
}

// LiftA2 lifts a plain two argument function over two wrapped arguments. The
// result fails if either argument does.
func LiftA2[A, MA, B, MB, C, MC any](da Monad[A, MA, C, MC],
	db Monad[B, MB, C, MC], f func(A, B) C, ma MA, mb MB) MC {

	return da.Bind(ma, func(a A) MC {
		return db.Bind(mb, func(b B) MC {
			return db.Ret(f(a, b))
		})
	})
}

// ApSlice lifts a function over any number of wrapped positional arguments.
// The arguments are sequenced left to right, so the first failing one
// decides the result.
func ApSlice[A, MA, MS, B, MB any](ds Monad[A, MA, []A, MS],
	df Monad[[]A, MS, B, MB], f func([]A) B, margs []MA) MB {

	return Lift(df, f, Sequence(ds, margs))
}

// ApMap lifts a function over wrapped keyword arguments, the keyed form of
// ApSlice.
func ApMap[K constraints.Ordered, A, MA, MM, B, MB any](
	dm Monad[A, MA, map[K]A, MM], df Monad[map[K]A, MM, B, MB],
	f func(map[K]A) B, margs map[K]MA) MB {

	return Lift(df, f, SequenceMap(dm, margs))
}
