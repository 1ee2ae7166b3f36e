package fn

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// reprConfig renders values without pointer addresses or capacities so the
// output is stable across runs.
var reprConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Repr renders v for diagnostics in the way a Go literal would read: strings
// are quoted, errors show their type and message, and everything else goes
// through spew so that pointers are followed and map keys are sorted.
func Repr(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"

	case string:
		return strconv.Quote(v)

	case error:
		if isNilPointer(v) {
			return fmt.Sprintf("%T(nil)", v)
		}

		return fmt.Sprintf("%T(%q)", v, v.Error())

	case fmt.Stringer:
		if isNilPointer(v) {
			return fmt.Sprintf("%T(nil)", v)
		}

		return v.String()

	default:
		return reprConfig.Sprintf("%v", v)
	}
}

// isNilPointer reports whether v holds a typed nil pointer, whose methods may
// not be safe to call.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
