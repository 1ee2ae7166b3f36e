package either

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/maybe"
	"github.com/lightningnetwork/fp/seq"
	"github.com/stretchr/testify/require"
)

// keyError mirrors the error a failed map lookup reports.
type keyError struct {
	key string
}

func (k *keyError) Error() string {
	return fmt.Sprintf("key not found: %q", k.key)
}

func lookup[V any](m map[string]V, k string) Either[error, V] {
	return Catch(func() (V, error) {
		v, ok := m[k]
		if !ok {
			return v, &keyError{key: k}
		}

		return v, nil
	})
}

func genEither(r *rand.Rand) Either[string, int] {
	if r.Intn(3) == 0 {
		return Left[int](strconv.Itoa(r.Int()))
	}

	return Right[string](r.Intn(1000) - 500)
}

func halveEven(x int) Either[string, int] {
	if x%2 != 0 {
		return Left[int]("odd")
	}

	return Right[string](x / 2)
}

func positive(x int) Either[string, int] {
	if x <= 0 {
		return Left[int]("not positive")
	}

	return Right[string](x)
}

func TestMonadLaws(t *testing.T) {
	gen := &quick.Config{
		Values: func(vs []reflect.Value, r *rand.Rand) {
			vs[0] = reflect.ValueOf(genEither(r))
		},
	}

	leftIdentity := func(x int) bool {
		return Bind(Ret[string](x), halveEven) == halveEven(x)
	}
	require.NoError(t, quick.Check(leftIdentity, nil))

	rightIdentity := func(m Either[string, int]) bool {
		return Bind(m, Ret[string, int]) == m
	}
	require.NoError(t, quick.Check(rightIdentity, gen))

	associativity := func(m Either[string, int]) bool {
		left := Bind(Bind(m, halveEven), positive)
		right := Bind(m, func(x int) Either[string, int] {
			return Bind(halveEven(x), positive)
		})

		return left == right
	}
	require.NoError(t, quick.Check(associativity, gen))
}

func TestLookup(t *testing.T) {
	require.Equal(t, Right[error]("bar"),
		lookup(map[string]string{"foo": "bar"}, "foo"))

	missing := lookup(map[string]string{}, "foo")
	require.True(t, missing.IsLeft())
	require.False(t, missing.IsRight())

	// Elim surfaces the string form of whichever side is present.
	msg := Elim(missing, error.Error, fn.Iden[string])
	require.Equal(t, `key not found: "foo"`, msg)

	var keyErr *keyError
	err := Elim(missing, fn.Iden[error], func(string) error { return nil })
	require.True(t, errors.As(err, &keyErr))
	require.Equal(t, "foo", keyErr.key)

	require.Equal(t, "bar",
		lookup(map[string]string{"foo": "bar"}, "foo").Default("bing"))
	require.Equal(t, "bing", missing.Default("bing"))
}

func TestBindChain(t *testing.T) {
	nested := func(data map[string]map[string]string) Either[error, string] {
		return Bind(lookup(data, "foo"),
			func(inner map[string]string) Either[error, string] {
				return lookup(inner, "bar")
			},
		)
	}

	require.Equal(t, Right[error]("baz"), nested(
		map[string]map[string]string{"foo": {"bar": "baz"}},
	))

	// The failure reported is the first one hit.
	var keyErr *keyError
	err := Elim(nested(map[string]map[string]string{"foo": {}}),
		fn.Iden[error], func(string) error { return nil })
	require.True(t, errors.As(err, &keyErr))
	require.Equal(t, "bar", keyErr.key)

	err = Elim(nested(map[string]map[string]string{}),
		fn.Iden[error], func(string) error { return nil })
	require.True(t, errors.As(err, &keyErr))
	require.Equal(t, "foo", keyErr.key)
}

func TestLeftShortCircuits(t *testing.T) {
	crashy := func(int) Either[string, int] {
		t.Fatalf("bind must not call the arrow on a Left")
		return Left[int]("unreachable")
	}

	l := Left[int]("boom")
	require.Equal(t, l, Bind(l, crashy))
}

func TestString(t *testing.T) {
	require.Equal(t, "Left(1)", Left[string](1).String())
	require.Equal(t, `Right("x")`, Right[int]("x").String())
	require.Equal(t, `Left(*either.keyError("key not found: \"k\""))`,
		Left[int, error](&keyError{key: "k"}).String())

	var pathErr *os.PathError
	require.Equal(t, "Left(*fs.PathError(nil))",
		Left[int, error](pathErr).String())
}

func TestLeftsRights(t *testing.T) {
	xs := seq.Of(Left[int](1), Right[int](2), Left[int](3))

	require.Equal(t, []Either[int, int]{Left[int](1), Left[int](3)},
		seq.Collect(Lefts(xs)))
	require.Equal(t, []Either[int, int]{Right[int](2)},
		seq.Collect(Rights(xs)))

	require.Equal(t, []int{1, 3}, seq.Collect(LeftValues(xs)))
	require.Equal(t, []int{2}, seq.Collect(RightValues(xs)))
}

func TestConversions(t *testing.T) {
	require.Equal(t, maybe.Just(2), ToMaybe(Right[string](2)))
	require.Equal(t, maybe.Nothing[int](), ToMaybe(Left[int]("x")))

	require.Equal(t, Right[string](2), FromMaybe(maybe.Just(2), "none"))
	require.Equal(t, Left[int]("none"),
		FromMaybe(maybe.Nothing[int](), "none"))

	require.Equal(t, Right[error](1), FromResult(1, nil))
	require.True(t, FromResult(0, errors.New("x")).IsLeft())

	require.Equal(t, Right[int]("a"), Left[int]("a").Swap())

	require.Equal(t, Right[string](4),
		Map(Right[string](2), fn.Partial(fn.Mul[int], 2)))
	require.Equal(t, Left[int](5),
		MapLeft(Left[int]("hello"), func(s string) int { return len(s) }))
}

func TestCombinators(t *testing.T) {
	atoi := CatchArrow(strconv.Atoi)

	got := MapM(atoi, []string{"1", "2"})
	require.Equal(t, Right[error]([]int{1, 2}), got)

	got = MapM(atoi, []string{"1", "a", "b"})
	err := Elim(got, fn.Iden[error], func([]int) error { return nil })
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	require.Equal(t, "a", numErr.Num)

	require.Equal(t, Right[string]([]int{1, 2}), Sequence(
		[]Either[string, int]{Right[string](1), Right[string](2)},
	))
	require.Equal(t, Left[[]int]("first"), Sequence(
		[]Either[string, int]{
			Right[string](1), Left[int]("first"), Left[int]("second"),
		},
	))
	require.Equal(t, Right[string](fn.Unit{}), Sequence_(
		[]Either[string, int]{Right[string](1)},
	))
	require.Equal(t, Left[fn.Unit]("not positive"),
		MapM_(positive, []int{1, 0}))

	// The smallest failing key wins.
	require.Equal(t, Left[map[string]int]("a"), SequenceMap(
		map[string]Either[string, int]{
			"b": Left[int]("b"),
			"a": Left[int]("a"),
			"c": Right[string](3),
		},
	))
	require.Equal(t, Right[string](map[string]int{"c": 3}), SequenceMap(
		map[string]Either[string, int]{"c": Right[string](3)},
	))

	evenPositive := func(x int) Either[string, bool] {
		return Map(positive(x), fn.Even[int])
	}
	require.Equal(t, Right[string]([]int{2}),
		FilterM(evenPositive, []int{1, 2, 3}))
	require.Equal(t, Left[[]int]("not positive"),
		FilterM(evenPositive, []int{2, -2}))
}

func TestApplicative(t *testing.T) {
	inc := Right[string](func(x int) int { return x + 1 })
	require.Equal(t, Right[string](2), Ap(inc, Right[string](1)))
	require.Equal(t, Left[int]("no"), Ap(inc, Left[int]("no")))

	require.Equal(t, Right[string](5),
		LiftA2(fn.Add[int], Right[string](2), Right[string](3)))
	require.Equal(t, Left[int]("a"),
		LiftA2(fn.Add[int], Left[int]("a"), Left[int]("b")))

	count := func(xs []int) int { return len(xs) }
	require.Equal(t, Right[string](2),
		ApSlice(count, Right[string](7), Right[string](8)))

	halveThenCheck := ArrowCL(halveEven, positive)
	require.Equal(t, Right[string](2), halveThenCheck(4))
	require.Equal(t, Left[int]("odd"), halveThenCheck(3))
	require.Equal(t, Left[int]("not positive"), halveThenCheck(-4))
	require.Equal(t, halveThenCheck(6), ArrowCR(positive, halveEven)(6))

	require.Equal(t, Right[string](1),
		Join(Right[string](Right[string](1))))
	require.Equal(t, Left[int]("inner"),
		Join(Right[string](Left[int]("inner"))))
}
