package seq

import (
	"iter"
	"testing"

	"github.com/lightningnetwork/fp/fn"
	"github.com/stretchr/testify/require"
)

// crashingSeq yields xs and then fails the test if it is pulled any further.
// It stands in for a source that must never be over-consumed.
func crashingSeq[A any](t *testing.T, xs ...A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}

		t.Fatalf("sequence pulled past its last element")
	}
}

func TestTakeDrop(t *testing.T) {
	require.Equal(t, []int{0, 1, 2}, Collect(Take(3, Range(0, 5))))
	require.Equal(t, []int{}, Collect(Take(3, Of[int]())))
	require.Equal(t, []int{}, Collect(Take(0, Range(0, 5))))

	// Take must not pull past the n-th element.
	require.Equal(t, []int{1, 2}, Collect(Take(2, crashingSeq(t, 1, 2))))

	require.Equal(t, []int{3, 4, 5}, Collect(Drop(3, Range(0, 6))))
	require.Equal(t, []int{}, Collect(Drop(3, Of[int]())))
}

func TestTakeWhileDropWhile(t *testing.T) {
	lessThanFour := fn.PartialRight(fn.Lt[int], 4)
	require.Equal(t, []int{1, 2, 3}, Collect(
		TakeWhile(lessThanFour, crashingSeq(t, 1, 2, 3, 4)),
	))

	lessThanFive := fn.PartialRight(fn.Lt[int], 5)
	require.Equal(t, []int{5, 6, 7, 8, 9, 10}, Collect(
		DropWhile(lessThanFive, Range(0, 11)),
	))

	// Once dropping stops, later matches are kept.
	require.Equal(t, []int{5, 1}, Collect(
		DropWhile(lessThanFive, Of(1, 5, 1)),
	))
}

func TestSplitAt(t *testing.T) {
	prefix, suffix := SplitAt(3, Range(0, 6))
	require.Equal(t, []int{0, 1, 2}, Collect(prefix))
	require.Equal(t, []int{3, 4, 5}, Collect(suffix))

	prefix, suffix = SplitAt(3, Range(0, 2))
	require.Equal(t, []int{0, 1}, Collect(prefix))
	require.Equal(t, []int{}, Collect(suffix))

	// The suffix skips the prefix even when the prefix is never ranged.
	_, suffix = SplitAt(2, Range(0, 5))
	require.Equal(t, []int{2, 3, 4}, Collect(suffix))

	// Nothing is pulled from the source until a half is ranged.
	pulled := 0
	src := Map(func(a int) int {
		pulled++
		return a
	}, Range(0, 5))
	prefix, _ = SplitAt(2, src)
	require.Zero(t, pulled)
	require.Equal(t, []int{0, 1}, Collect(prefix))
}

func TestZip(t *testing.T) {
	pairs := Collect(Zip(Of(1, 2, 3), Of("a", "b", "c", "d")))
	require.Equal(t, []fn.T2[int, string]{
		fn.NewT2(1, "a"), fn.NewT2(2, "b"), fn.NewT2(3, "c"),
	}, pairs)

	require.Equal(t, []int{7, 9, 11, 13, 15}, Collect(
		ZipWith(fn.Add[int], Range(1, 6), Range(6, 11)),
	))
}

func TestChainCompress(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 4}, Collect(
		Chain(Range(1, 3), Range(3, 5)),
	))

	require.Equal(t, []string{"A", "C", "E", "F"}, Collect(Compress(
		Of("A", "B", "C", "D", "E", "F"),
		Of(true, false, true, false, true, true),
	)))
}

func TestCycleRepeat(t *testing.T) {
	require.Equal(t, []int{1, 2, 1, 2, 1}, Collect(
		Take(5, Cycle(Of(1, 2))),
	))
	require.Equal(t, []int{}, Collect(Take(5, Cycle(Of[int]()))))

	require.Equal(t, []string{"x", "x"}, Collect(Repeat("x", 2)))
	require.Len(t, Collect(Take(4, Repeat("x", -1))), 4)
}

func TestChunk(t *testing.T) {
	require.Equal(t, [][]int{
		{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10},
	}, Collect(Chunk(3, Range(1, 11))))

	require.Equal(t, [][]int{
		{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 0, 0},
	}, Collect(ChunkFill(3, 0, Range(1, 11))))

	require.Equal(t, [][]int{}, Collect(Chunk(3, Of[int]())))
	require.Panics(t, func() { Chunk(0, Of(1)) })
}

func TestGroupBy(t *testing.T) {
	type group struct {
		key   bool
		items []int
	}

	var groups []group
	for k, items := range GroupBy(fn.Odd[int], Of(1, 3, 5, 2, 4, 6)) {
		groups = append(groups, group{k, items})
	}

	require.Equal(t, []group{
		{true, []int{1, 3, 5}},
		{false, []int{2, 4, 6}},
	}, groups)

	// Non-adjacent equal keys stay separate.
	var keys []bool
	for k := range GroupBy(fn.Odd[int], Of(1, 2, 3)) {
		keys = append(keys, k)
	}
	require.Equal(t, []bool{true, false, true}, keys)
}

func TestReducers(t *testing.T) {
	require.True(t, And(Of(true, true, true)))
	require.False(t, And(crashingSeq(t, true, false)))
	require.True(t, Or(Of(false, true)))
	require.False(t, Or(Of(false, false, false)))

	require.True(t, All(fn.Even[int], Map(
		fn.Partial(fn.Mul[int], 2), Range(1, 5),
	)))
	require.False(t, All(fn.Odd[int], Of(2, 4)))
	require.True(t, Any(fn.Even[int], Range(1, 10)))
	require.False(t, Any(fn.Odd[int], Of(2, 4, 6)))

	require.Equal(t, "eric", Sum(Of("er", "ic")))
	require.Equal(t, 10, Sum(Range(1, 5)))
	require.Equal(t, []int{1, 2, 3, 4}, Collect(ConcatMap(
		fn.Iden[[]int], Of([]int{1, 2}, []int{3, 4}),
	)))

	first, ok := First(Of(7, 8))
	require.True(t, ok)
	require.Equal(t, 7, first)

	_, ok = First(Of[int]())
	require.False(t, ok)

	require.Equal(t, []int{1, 2}, Collect(Compact(Of(0, 1, 0, 2))))
	require.Equal(t, []int{2, 4}, Collect(Filter(fn.Even[int], Range(1, 5))))
	require.Equal(t, 6, Fold(fn.Mul[int], 1, Of(1, 2, 3)))
}
