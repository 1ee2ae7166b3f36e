// Package monad defines the monad contract and the combinators every monad
// gets for free once it implements it.
//
// Go has no higher kinded types, so a monad is described by a dictionary: a
// (usually zero sized) value whose methods know how to build and sequence one
// particular instantiation of the monadic type. The dictionary interfaces are
// indexed by four types:
//
//	A   the element type going into Bind
//	MA  the monadic type wrapping an A, e.g. maybe.Maybe[A]
//	B   the element type coming out of Bind and Ret
//	MB  the monadic type wrapping a B
//
// Every concrete monad package exports an Instance type implementing these
// interfaces, and wraps the combinators here in typed helpers so callers
// rarely touch a dictionary directly.
//
// Instances are expected to satisfy the monad laws:
//
//	left identity:  Bind(Ret(x), f) ~ f(x)
//	right identity: Bind(m, Ret) ~ m
//	associativity:  Bind(Bind(m, f), g) ~ Bind(m, x => Bind(f(x), g))
package monad

import "github.com/lightningnetwork/fp/fn"

// Returner lifts plain values of type B into the monadic type MB.
type Returner[B, MB any] interface {
	// Ret wraps b in the minimal context of the monad.
	Ret(b B) MB
}

// Monad is the dictionary for a monad's bind operation from MA to MB.
type Monad[A, MA, B, MB any] interface {
	Returner[B, MB]

	// Bind feeds the value held by m to f. Failure variants short circuit
	// and f is never called.
	Bind(m MA, f func(A) MB) MB
}

// Failer is a Returner that can also produce the failure variant of the
// monad.
type Failer[B, MB any] interface {
	Returner[B, MB]

	// Fail produces the failure variant carrying err where the monad has
	// room for it.
	Fail(err error) MB
}

// MonadFail is a Monad that can also fail.
type MonadFail[A, MA, B, MB any] interface {
	Monad[A, MA, B, MB]

	// Fail produces the failure variant carrying err where the monad has
	// room for it.
	Fail(err error) MB
}

// Then sequences ma and mb, discarding the value of ma.
func Then[A, MA, B, MB any](d Monad[A, MA, B, MB], ma MA, mb MB) MB {
	return d.Bind(ma, func(A) MB {
		return mb
	})
}

// Join flattens a doubly wrapped value.
func Join[A, MA, MMA any](d Monad[MA, MMA, A, MA], mma MMA) MA {
	return d.Bind(mma, fn.Iden[MA])
}

// Lift applies a plain function to a wrapped value.
func Lift[A, MA, B, MB any](d Monad[A, MA, B, MB], f func(A) B, ma MA) MB {
	return d.Bind(ma, func(a A) MB {
		return d.Ret(f(a))
	})
}

// ArrowCL composes two Kleisli arrows left to right: f runs first and its
// result is bound into g.
func ArrowCL[A, B, MB, C, MC any](d Monad[B, MB, C, MC], f func(A) MB,
	g func(B) MC) func(A) MC {

	return func(a A) MC {
		return d.Bind(f(a), g)
	}
}

// ArrowCR composes two Kleisli arrows right to left: ArrowCR(d, g, f) is
// ArrowCL(d, f, g).
func ArrowCR[A, B, MB, C, MC any](d Monad[B, MB, C, MC], g func(B) MC,
	f func(A) MB) func(A) MC {

	return ArrowCL(d, f, g)
}

// When returns m if cond holds and an action doing nothing otherwise.
func When[MU any](d Returner[fn.Unit, MU], cond bool, m MU) MU {
	if cond {
		return m
	}

	return d.Ret(fn.Unit{})
}

// Unless is When with the condition inverted.
func Unless[MU any](d Returner[fn.Unit, MU], cond bool, m MU) MU {
	return When(d, !cond, m)
}
