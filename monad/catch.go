package monad

import (
	"github.com/go-errors/errors"
)

// Catch runs f and brings its outcome into the monad: the value through Ret,
// an error through Fail. A panic inside f is recovered and handled like a
// returned error, wrapped with the stack it was raised from. This is the
// bridge from conventional error returning code into a monadic chain.
func Catch[A, MA any](d Failer[A, MA], f func() (A, error)) MA {
	a, err := protect(f)
	if err != nil {
		return d.Fail(err)
	}

	return d.Ret(a)
}

// CatchArrow turns a fallible function into a Kleisli arrow using Catch.
func CatchArrow[X, A, MA any](d Failer[A, MA],
	f func(X) (A, error)) func(X) MA {

	return func(x X) MA {
		return Catch(d, func() (A, error) {
			return f(x)
		})
	}
}

func protect[A any](f func() (A, error)) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(r, 2)
		}
	}()

	return f()
}
