package fn

import "fmt"

// T2 is the simplest 2-tuple type. It is what functions that want to hand
// back two values through a single type parameter return, e.g. the pairs
// seq.Zip yields.
type T2[A, B any] struct {
	fst A
	snd B
}

// NewT2 packs its arguments into a 2-tuple.
func NewT2[A, B any](a A, b B) T2[A, B] {
	return T2[A, B]{fst: a, snd: b}
}

// Fst returns the first value in the T2.
func (t2 T2[A, B]) Fst() A {
	return t2.fst
}

// Snd returns the second value in the T2.
func (t2 T2[A, B]) Snd() B {
	return t2.snd
}

// AsGoPair ejects the 2-tuple's members into the multiple return values that
// are customary in go idiom.
func (t2 T2[A, B]) AsGoPair() (A, B) {
	return t2.fst, t2.snd
}

// Swap exchanges the members of the tuple.
func (t2 T2[A, B]) Swap() T2[B, A] {
	return T2[B, A]{fst: t2.snd, snd: t2.fst}
}

// String renders the tuple as (fst, snd).
func (t2 T2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t2.fst, t2.snd)
}
