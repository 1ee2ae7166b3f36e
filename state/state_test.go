package state

import (
	"testing"
	"testing/quick"

	"github.com/lightningnetwork/fp/fn"
	"github.com/stretchr/testify/require"
)

func inc(x int) int {
	return x + 1
}

func TestGetBind(t *testing.T) {
	m := Bind(Get[int](), func(x int) State[int, int] {
		return Ret[int](x + 1)
	})

	v, s := m.Run(0)
	require.Equal(t, 1, v)
	require.Equal(t, 0, s)
}

func TestModify(t *testing.T) {
	v, s := Modify(inc).Run(0)
	require.Equal(t, fn.Unit{}, v)
	require.Equal(t, 1, s)
}

func TestPutGets(t *testing.T) {
	m := Then(Put("hello"), Gets(func(s string) int { return len(s) }))

	v, s := m.Run("ignored")
	require.Equal(t, 5, v)
	require.Equal(t, "hello", s)

	require.Equal(t, 5, m.Eval(""))
	require.Equal(t, "hello", m.Exec(""))

	var zero State[int, string]
	v2, s2 := zero.Run(3)
	require.Equal(t, "", v2)
	require.Equal(t, 3, s2)
}

func TestMonadLaws(t *testing.T) {
	// Steps that read and write the state so the laws are checked on
	// both halves of the result.
	push := func(x int) State[int, int] {
		return New(func(s int) (int, int) {
			return x + s, s*2 + x
		})
	}
	tick := func(x int) State[int, int] {
		return Then(Modify(inc), Ret[int](x*3))
	}

	same := func(a, b State[int, int], s int) bool {
		av, as := a.Run(s)
		bv, bs := b.Run(s)
		return av == bv && as == bs
	}

	leftIdentity := func(x, s int) bool {
		return same(Bind(Ret[int](x), push), push(x), s)
	}
	require.NoError(t, quick.Check(leftIdentity, nil))

	rightIdentity := func(x, s int) bool {
		return same(Bind(push(x), Ret[int, int]), push(x), s)
	}
	require.NoError(t, quick.Check(rightIdentity, nil))

	associativity := func(x, s int) bool {
		left := Bind(Bind(push(x), tick), push)
		right := Bind(push(x), func(y int) State[int, int] {
			return Bind(tick(y), push)
		})

		return same(left, right, s)
	}
	require.NoError(t, quick.Check(associativity, nil))
}

func TestSequenceThreadsState(t *testing.T) {
	// Each step answers the counter and then bumps it.
	next := Bind(Get[int](), func(n int) State[int, int] {
		return Then(Put(n+1), Ret[int](n))
	})

	v, s := Sequence([]State[int, int]{next, next, next}).Run(10)
	require.Equal(t, []int{10, 11, 12}, v)
	require.Equal(t, 13, s)

	u, s := Sequence_([]State[int, int]{next, next}).Run(0)
	require.Equal(t, fn.Unit{}, u)
	require.Equal(t, 2, s)
}

func TestMapMRunsTwice(t *testing.T) {
	label := func(name string) State[int, string] {
		return Bind(Get[int](), func(n int) State[int, string] {
			return Then(Put(n+1), Ret[int](name))
		})
	}

	m := MapM(label, []string{"a", "b"})

	first, s := m.Run(0)
	require.Equal(t, []string{"a", "b"}, first)
	require.Equal(t, 2, s)

	second, s := m.Run(5)
	require.Equal(t, []string{"a", "b"}, second)
	require.Equal(t, 7, s)
	require.Equal(t, []string{"a", "b"}, first)

	_, s = MapM_(label, []string{"x", "y", "z"}).Run(0)
	require.Equal(t, 3, s)
}

func TestFilterMWhenUnless(t *testing.T) {
	// Keep items while counting how many were rejected.
	keepEven := func(x int) State[int, bool] {
		return Then(
			When(fn.Odd(x), Modify(inc)), Ret[int](fn.Even(x)),
		)
	}

	kept, rejected := FilterM(keepEven, []int{1, 2, 3, 4, 5}).Run(0)
	require.Equal(t, []int{2, 4}, kept)
	require.Equal(t, 3, rejected)

	require.Equal(t, 0, Unless(true, Modify(inc)).Exec(0))
	require.Equal(t, 1, Unless(false, Modify(inc)).Exec(0))

	doubleThenShow := ArrowCL(
		func(x int) State[int, int] {
			return Then(Modify(inc), Ret[int](x*2))
		},
		func(x int) State[int, string] {
			return Gets(func(s int) string {
				return fn.Repr(x + s)
			})
		},
	)
	v, s := doubleThenShow(4).Run(1)
	require.Equal(t, "10", v)
	require.Equal(t, 2, s)
}
