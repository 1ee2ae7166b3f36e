package fn

// Unit is a type alias for the empty struct to make it a bit less noisy to
// communicate the informationaless type. It is also the value that monadic
// actions run purely for their effect answer with.
type Unit = struct{}

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)). This
// reads in the order the data flows, which tends to be the natural way to
// build pipelines out of small functions.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose is right to left function composition, the mathematical f . g.
// Compose(f, g)(x) == f(g(x)).
func Compose[A, B, C any](f func(B) C, g func(A) B) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}

// Iden is the left and right identity of Comp and Compose. It is a function
// that simply returns its argument.
func Iden[A any](a A) A {
	return a
}

// Const is a function that accepts an argument and returns a function that
// always returns that value irrespective of the returned function's argument.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Thunk returns a zero argument function that always produces a.
func Thunk[A any](a A) func() A {
	return func() A {
		return a
	}
}

// Flip swaps the argument order of a two argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// Curry takes a two argument function and returns a function that accepts
// the first argument and then returns a function that accepts the second
// argument. This is the way to adapt functions written in a typical go style
// to the single argument functions the rest of this package works with.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Uncurry inverts the Curry operation.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Partial fixes the first argument of f. Partial(Sub[int], 10)(3) == 7.
func Partial[A, B, C any](f func(A, B) C, a A) func(B) C {
	return func(b B) C {
		return f(a, b)
	}
}

// PartialRight fixes the last argument of f, leaving the first one open. This
// is the shape mapping functions want when the subject of the call comes
// first: PartialRight(strings.TrimPrefix, "/") strips a leading slash from
// whatever it is handed.
func PartialRight[A, B, C any](f func(A, B) C, b B) func(A) C {
	return func(a A) C {
		return f(a, b)
	}
}

// Thread chains a list of endomorphisms left to right. Thread() is Iden.
func Thread[A any](fs ...func(A) A) func(A) A {
	return func(a A) A {
		for _, f := range fs {
			a = f(a)
		}

		return a
	}
}

// Pair takes two functions that share the same argument type and runs them
// both and produces a 2-tuple of the results.
func Pair[A, B, C any](f func(A) B, g func(A) C) func(A) T2[B, C] {
	return func(a A) T2[B, C] {
		return NewT2(f(a), g(a))
	}
}

// First lifts the argument function into one that applies to the first
// element of a 2-tuple.
func First[A, B, C any](f func(A) B) func(T2[A, C]) T2[B, C] {
	return func(t2 T2[A, C]) T2[B, C] {
		return NewT2(f(t2.fst), t2.snd)
	}
}

// Second lifts the argument function into one that applies to the second
// element of a 2-tuple.
func Second[A, B, C any](f func(A) B) func(T2[C, A]) T2[C, B] {
	return func(t2 T2[C, A]) T2[C, B] {
		return NewT2(t2.fst, f(t2.snd))
	}
}

// Spread adapts a two argument function to take a 2-tuple instead.
func Spread[A, B, C any](f func(A, B) C) func(T2[A, B]) C {
	return func(t2 T2[A, B]) C {
		return f(t2.fst, t2.snd)
	}
}

// Eq is a curried function that returns true if its eventual two arguments
// are equal.
func Eq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x == y
	}
}

// Neq is a curried function that returns true if its eventual two arguments
// are not equal.
func Neq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x != y
	}
}
