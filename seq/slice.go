package seq

import (
	"iter"

	"github.com/lightningnetwork/fp/fn"
)

// Take yields at most the first n elements of s.
func Take[A any](n int, s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		if n <= 0 {
			return
		}

		i := 0
		for a := range s {
			if !yield(a) {
				return
			}

			i++
			if i == n {
				return
			}
		}
	}
}

// Drop skips the first n elements of s.
func Drop[A any](n int, s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		i := 0
		for a := range s {
			if i < n {
				i++
				continue
			}

			if !yield(a) {
				return
			}
		}
	}
}

// TakeWhile yields elements while pred holds and stops at the first one that
// fails it, without pulling any further.
func TakeWhile[A any](pred func(A) bool, s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for a := range s {
			if !pred(a) || !yield(a) {
				return
			}
		}
	}
}

// DropWhile skips elements while pred holds and yields everything after.
func DropWhile[A any](pred func(A) bool, s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		dropping := true
		for a := range s {
			if dropping && pred(a) {
				continue
			}
			dropping = false

			if !yield(a) {
				return
			}
		}
	}
}

// SplitAt splits s into its first i elements and the rest. Both halves share
// one pass over s, which starts the first time either half is ranged over.
// Ranging over the suffix skips whatever the prefix has not consumed yet.
// Once a half has been ranged over, the suffix must be ranged over too to
// release the pass.
func SplitAt[A any](i int, s iter.Seq[A]) (iter.Seq[A], iter.Seq[A]) {
	var (
		next  func() (A, bool)
		stop  func()
		taken int
	)
	pull := func() (A, bool) {
		if next == nil {
			next, stop = iter.Pull(s)
		}

		return next()
	}

	prefix := func(yield func(A) bool) {
		for taken < i {
			a, ok := pull()
			if !ok {
				return
			}
			taken++

			if !yield(a) {
				return
			}
		}
	}
	suffix := func(yield func(A) bool) {
		defer func() {
			if stop != nil {
				stop()
			}
		}()

		for ; taken < i; taken++ {
			if _, ok := pull(); !ok {
				return
			}
		}
		for {
			a, ok := pull()
			if !ok || !yield(a) {
				return
			}
		}
	}

	return prefix, suffix
}

// Compress yields the elements of s whose matching selector is true. It stops
// when either input runs out.
func Compress[A any](s iter.Seq[A], selectors iter.Seq[bool]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for pair := range Zip(s, selectors) {
			if pair.Snd() && !yield(pair.Fst()) {
				return
			}
		}
	}
}

// Zip pairs up the elements of a and b, stopping at the shorter input.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq[fn.T2[A, B]] {
	return ZipWith(fn.NewT2[A, B], a, b)
}

// ZipWith combines the elements of a and b pairwise with f, stopping at the
// shorter input.
func ZipWith[A, B, C any](f func(A, B) C, a iter.Seq[A],
	b iter.Seq[B]) iter.Seq[C] {

	return func(yield func(C) bool) {
		nextB, stop := iter.Pull(b)
		defer stop()

		for x := range a {
			y, ok := nextB()
			if !ok || !yield(f(x, y)) {
				return
			}
		}
	}
}

// Chain yields every element of each sequence in turn.
func Chain[A any](seqs ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, s := range seqs {
			for a := range s {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Cycle repeats s forever. An empty s yields nothing.
func Cycle[A any](s iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for {
			empty := true
			for a := range s {
				empty = false
				if !yield(a) {
					return
				}
			}

			if empty {
				return
			}
		}
	}
}

// Repeat yields a n times, or forever when n is negative.
func Repeat[A any](a A, n int) iter.Seq[A] {
	return func(yield func(A) bool) {
		for i := 0; n < 0 || i < n; i++ {
			if !yield(a) {
				return
			}
		}
	}
}
