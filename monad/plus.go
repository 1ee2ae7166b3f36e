package monad

import "github.com/lightningnetwork/fp/fn"

// Alternative is a monoid on a monadic type: a zero value meaning absence
// and an associative choice between two values.
type Alternative[MA any] interface {
	// Zero is the identity of Plus.
	Zero() MA

	// Plus returns a unless it is Zero, in which case it returns b.
	Plus(a, b MA) MA
}

// MonadPlus is a Monad whose output type forms an Alternative.
type MonadPlus[A, MA, B, MB any] interface {
	Monad[A, MA, B, MB]
	Alternative[MB]
}

// Zeroer is what Guard needs: a way to build the zero and the unit of a
// monad.
type Zeroer[B, MB any] interface {
	Returner[B, MB]

	// Zero is the absent value of the monad.
	Zero() MB
}

// Msum folds Plus over xs starting from Zero, which amounts to picking the
// first non zero element. An empty xs gives Zero.
func Msum[MA any](d Alternative[MA], xs []MA) MA {
	acc := d.Zero()
	for _, x := range xs {
		acc = d.Plus(acc, x)
	}

	return acc
}

// Mfilter keeps the value in m if it satisfies pred and turns m into Zero
// otherwise.
func Mfilter[A, MA any](d MonadPlus[A, MA, A, MA], m MA,
	pred func(A) bool) MA {

	return d.Bind(m, func(a A) MA {
		if pred(a) {
			return d.Ret(a)
		}

		return d.Zero()
	})
}

// Guard is unit when cond holds and Zero otherwise. Bound into a chain it
// cuts the rest of the chain off when cond is false.
func Guard[MU any](d Zeroer[fn.Unit, MU], cond bool) MU {
	if cond {
		return d.Ret(fn.Unit{})
	}

	return d.Zero()
}
