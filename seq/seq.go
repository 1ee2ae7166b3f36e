// Package seq contains lazy helpers over iter.Seq. Nothing here pulls more
// items from its source than the consumer asks for: a range loop that breaks
// early stops the whole pipeline.
package seq

import (
	"iter"

	"github.com/lightningnetwork/fp/fn"
)

// Of yields its arguments in order.
func Of[A any](xs ...A) iter.Seq[A] {
	return FromSlice(xs)
}

// FromSlice yields the elements of xs.
func FromSlice[A any](xs []A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Range yields the integers in [start, stop).
func Range(start, stop int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := start; i < stop; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Collect drains s into a slice. It never returns nil so results compare
// cleanly against empty literals.
func Collect[A any](s iter.Seq[A]) []A {
	xs := []A{}
	for x := range s {
		xs = append(xs, x)
	}

	return xs
}

// Map applies f to every element.
func Map[A, B any](f func(A) B, s iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range s {
			if !yield(f(a)) {
				return
			}
		}
	}
}

// Filter keeps the elements that satisfy pred.
func Filter[A any](pred func(A) bool, s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for a := range s {
			if pred(a) && !yield(a) {
				return
			}
		}
	}
}

// Compact drops zero values, the typed counterpart of removing nulls.
func Compact[A comparable](s iter.Seq[A]) iter.Seq[A] {
	var zero A
	return Filter(fn.Neq(zero), s)
}

// Fold reduces s left to right starting from init.
func Fold[A, B any](f func(B, A) B, init B, s iter.Seq[A]) B {
	acc := init
	for a := range s {
		acc = f(acc, a)
	}

	return acc
}

// Sum adds up the elements of s. It works for strings too, concatenating
// them.
func Sum[A fn.Addable](s iter.Seq[A]) A {
	var zero A
	return Fold(fn.Add[A], zero, s)
}

// ConcatMap maps every element to a slice and flattens the result.
func ConcatMap[A, B any](f func(A) []B, s iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range s {
			for _, b := range f(a) {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// First returns the first element of s, if there is one.
func First[A any](s iter.Seq[A]) (A, bool) {
	for a := range s {
		return a, true
	}

	var zero A
	return zero, false
}

// And is the logical conjunction of s. It stops at the first false.
func And(s iter.Seq[bool]) bool {
	for b := range s {
		if !b {
			return false
		}
	}

	return true
}

// Or is the logical disjunction of s. It stops at the first true.
func Or(s iter.Seq[bool]) bool {
	for b := range s {
		if b {
			return true
		}
	}

	return false
}

// All reports whether every element satisfies pred.
func All[A any](pred func(A) bool, s iter.Seq[A]) bool {
	return And(Map(pred, s))
}

// Any reports whether some element satisfies pred.
func Any[A any](pred func(A) bool, s iter.Seq[A]) bool {
	return Or(Map(pred, s))
}
