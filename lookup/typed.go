package lookup

import (
	"github.com/lightningnetwork/fp/either"
	"github.com/lightningnetwork/fp/maybe"
)

// Maybe is GetNested in the Maybe monad.
func Maybe(coll any, keys ...any) maybe.Maybe[any] {
	return GetNested[maybe.Maybe[any]](
		maybe.Instance[any, any]{}, coll, keys...,
	)
}

// Either is GetNested in the Either monad, keeping the reason a step failed
// on the Left.
func Either(coll any, keys ...any) either.Either[error, any] {
	return GetNested[either.Either[error, any]](
		either.FailInstance[any, any]{}, coll, keys...,
	)
}
