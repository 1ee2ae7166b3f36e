package seq

import "iter"

// Chunk splits s into slices of n elements. The last chunk is shorter when
// the length of s is not a multiple of n. n must be positive.
func Chunk[A any](n int, s iter.Seq[A]) iter.Seq[[]A] {
	if n <= 0 {
		panic("seq: chunk size must be positive")
	}

	return func(yield func([]A) bool) {
		chunk := make([]A, 0, n)
		for a := range s {
			chunk = append(chunk, a)
			if len(chunk) < n {
				continue
			}

			if !yield(chunk) {
				return
			}
			chunk = make([]A, 0, n)
		}

		if len(chunk) > 0 {
			yield(chunk)
		}
	}
}

// ChunkFill is Chunk with the last chunk padded to n elements with fill.
func ChunkFill[A any](n int, fill A, s iter.Seq[A]) iter.Seq[[]A] {
	return func(yield func([]A) bool) {
		for chunk := range Chunk(n, s) {
			for len(chunk) < n {
				chunk = append(chunk, fill)
			}

			if !yield(chunk) {
				return
			}
		}
	}
}

// GroupBy groups runs of consecutive elements that share a key. Like the
// classic groupby, equal keys that are not adjacent land in separate groups,
// so sort s by key first to get one group per key.
func GroupBy[K comparable, A any](key func(A) K,
	s iter.Seq[A]) iter.Seq2[K, []A] {

	return func(yield func(K, []A) bool) {
		var (
			current K
			group   []A
		)
		for a := range s {
			k := key(a)
			if len(group) > 0 && k != current {
				if !yield(current, group) {
					return
				}
				group = nil
			}

			current = k
			group = append(group, a)
		}

		if len(group) > 0 {
			yield(current, group)
		}
	}
}
