package fn

// Bounce is one step of a trampolined computation: either a final value or a
// continuation producing the next step.
type Bounce[A any] struct {
	done  bool
	value A
	next  func() Bounce[A]
}

// Done ends a trampolined computation with a.
func Done[A any](a A) Bounce[A] {
	return Bounce[A]{done: true, value: a}
}

// More defers the rest of a trampolined computation to next.
func More[A any](next func() Bounce[A]) Bounce[A] {
	return Bounce[A]{next: next}
}

// Trampoline drives b until it is Done. Tail recursive functions written in
// terms of Done and More run in constant stack space this way.
func Trampoline[A any](b Bounce[A]) A {
	for !b.done {
		b = b.next()
	}

	return b.value
}
