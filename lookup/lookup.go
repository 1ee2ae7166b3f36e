// Package lookup reads values out of loosely typed nested data, such as a
// decoded JSON document, inside any monad that can fail. A missing key, an
// index out of range or a value that cannot be indexed all become the
// monad's failure variant instead of a panic.
package lookup

import (
	"fmt"
	"reflect"

	"github.com/lightningnetwork/fp/fn"
	"github.com/lightningnetwork/fp/monad"
)

// KeyError is returned when a map has no entry under Key.
type KeyError struct {
	Key any
}

// Error returns a human readable description of the missing key.
func (e *KeyError) Error() string {
	return fmt.Sprintf("key not found: %s", fn.Repr(e.Key))
}

// IndexError is returned when Index falls outside a slice of length Len.
type IndexError struct {
	Index int
	Len   int
}

// Error returns a human readable description of the bad index.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// TypeError is returned when Key cannot index a value of type Collection,
// either because the value is not a collection at all or because the key
// has the wrong type for it. Collection is nil when the value was nil.
type TypeError struct {
	Collection reflect.Type
	Key        any
}

// Error returns a human readable description of the mismatch.
func (e *TypeError) Error() string {
	if e.Collection == nil {
		return fmt.Sprintf("cannot index nil with %T", e.Key)
	}

	return fmt.Sprintf("cannot index %v with %T", e.Collection, e.Key)
}

// index reads key out of coll, which must be a map, slice, array or string.
func index(coll, key any) (any, error) {
	c := reflect.ValueOf(coll)
	k := reflect.ValueOf(key)

	if !c.IsValid() {
		return nil, &TypeError{Key: key}
	}

	switch c.Kind() {
	case reflect.Map:
		if !k.IsValid() || !k.Type().AssignableTo(c.Type().Key()) {
			return nil, &TypeError{Collection: c.Type(), Key: key}
		}

		v := c.MapIndex(k)
		if !v.IsValid() {
			return nil, &KeyError{Key: key}
		}

		return v.Interface(), nil

	case reflect.Slice, reflect.Array, reflect.String:
		i, ok := key.(int)
		if !ok {
			return nil, &TypeError{Collection: c.Type(), Key: key}
		}
		if i < 0 || i >= c.Len() {
			return nil, &IndexError{Index: i, Len: c.Len()}
		}

		return c.Index(i).Interface(), nil

	default:
		return nil, &TypeError{Collection: c.Type(), Key: key}
	}
}

// Lookup reads key out of coll in the monad d describes. Maps are indexed by
// key and slices, arrays and strings by an int position.
func Lookup[MA any](d monad.Failer[any, MA], coll, key any) MA {
	return monad.Catch(d, func() (any, error) {
		return index(coll, key)
	})
}

// Get is Lookup with the key first, which reads better when the collection
// is the one thing left to fill in.
func Get[MA any](d monad.Failer[any, MA], key, coll any) MA {
	return Lookup(d, coll, key)
}

// GetNested follows keys into nested collections, one Lookup per key. The
// first failing step decides the result. With no keys the result is coll
// itself.
func GetNested[MA any](d monad.MonadFail[any, MA, any, MA], coll any,
	keys ...any) MA {

	return fn.Trampoline(getNested(d, d.Ret(coll), keys))
}

func getNested[MA any](d monad.MonadFail[any, MA, any, MA], acc MA,
	keys []any) fn.Bounce[MA] {

	if len(keys) == 0 {
		return fn.Done(acc)
	}

	return fn.More(func() fn.Bounce[MA] {
		next := d.Bind(acc, func(c any) MA {
			return Lookup[MA](d, c, keys[0])
		})

		return getNested(d, next, keys[1:])
	})
}
