package fn

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number is the set of types the arithmetic operators work over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Addable is the set of types that support +.
type Addable interface {
	Number | constraints.Complex | ~string
}

// Add returns x + y.
func Add[A Addable](x, y A) A {
	return x + y
}

// Sub returns x - y.
func Sub[N Number](x, y N) N {
	return x - y
}

// Mul returns x * y.
func Mul[N Number](x, y N) N {
	return x * y
}

// Div is true division, Div(3, 2) == 1.5 whatever the argument type.
func Div[N Number](x, y N) float64 {
	return float64(x) / float64(y)
}

// Quot is floor division: the quotient is rounded towards negative infinity,
// so Quot(-3, 2) == -2.
func Quot[N constraints.Integer](x, y N) N {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}

	return q
}

// Mod returns the remainder matching Quot. The result takes the sign of the
// divisor, so Mod(-1, 5) == 4.
func Mod[N constraints.Integer](x, y N) N {
	r := x % y
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	return r
}

// Neg returns -x.
func Neg[N constraints.Signed | constraints.Float](x N) N {
	return -x
}

// Pow raises x to the n-th power by repeated squaring.
func Pow[N Number](x N, n uint) N {
	result := N(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}

	return result
}

// Lt returns x < y.
func Lt[A constraints.Ordered](x, y A) bool {
	return x < y
}

// Le returns x <= y.
func Le[A constraints.Ordered](x, y A) bool {
	return x <= y
}

// Gt returns x > y.
func Gt[A constraints.Ordered](x, y A) bool {
	return x > y
}

// Ge returns x >= y.
func Ge[A constraints.Ordered](x, y A) bool {
	return x >= y
}

// Contains reports whether x is one of xs.
func Contains[A comparable](xs []A, x A) bool {
	return slices.Contains(xs, x)
}

// In is Contains with its arguments flipped, for use with Partial.
func In[A comparable](x A, xs []A) bool {
	return slices.Contains(xs, x)
}

// HasKey reports whether k is a key of m.
func HasKey[K comparable, V any](m map[K]V, k K) bool {
	_, ok := m[k]
	return ok
}

// Even is true for even integers.
func Even[N constraints.Integer](x N) bool {
	return x%2 == 0
}

// Odd is true for odd integers.
func Odd[N constraints.Integer](x N) bool {
	return !Even(x)
}

// Not negates a predicate.
func Not[A any](pred func(A) bool) func(A) bool {
	return func(a A) bool {
		return !pred(a)
	}
}

// AllMap reports whether every element of xs satisfies pred. It stops at the
// first element that does not.
func AllMap[A any](pred func(A) bool, xs []A) bool {
	for _, x := range xs {
		if !pred(x) {
			return false
		}
	}

	return true
}

// AnyMap reports whether some element of xs satisfies pred. It stops at the
// first element that does.
func AnyMap[A any](pred func(A) bool, xs []A) bool {
	for _, x := range xs {
		if pred(x) {
			return true
		}
	}

	return false
}
