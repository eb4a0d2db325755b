// Package equality implements the two comparison modes used by the matchers:
// loose (deep, numeric kind insensitive) equality and strict identity.
package equality

import (
	"math"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOptions = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
	cmpopts.EquateNaNs(),
}

// Loose reports whether x and y are deeply equal.
// Numeric values are compared by value regardless of their concrete kind,
// so int(3), int64(3) and float64(3) are all equal.
// Types with an Equal method are compared with it.
func Loose(x, y any) (ok bool) {
	if x == nil || y == nil {
		return isNil(x) && isNil(y)
	}
	if nx, okx := Number(x); okx {
		if ny, oky := Number(y); oky {
			return nx.Equal(ny)
		}
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			ok = reflect.DeepEqual(x, y)
		}
	}()
	return cmp.Equal(x, y, cmpOptions...)
}

// Strict reports whether x and y are identical:
// they must share the same dynamic type,
// and reference kinds must point to the same underlying value.
func Strict(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() {
		return false
	}
	switch vx.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return vx.Pointer() == vy.Pointer()
	case reflect.Slice:
		return vx.Pointer() == vy.Pointer() && vx.Len() == vy.Len()
	}
	if vx.Type().Comparable() {
		return safeEq(x, y)
	}
	return reflect.DeepEqual(x, y)
}

func safeEq(x, y any) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = reflect.DeepEqual(x, y)
		}
	}()
	return x == y
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Num is a numeric value normalised for cross-kind comparison.
type Num struct {
	kind  numKind
	i     int64
	u     uint64
	f     float64
	isNaN bool
}

type numKind int

const (
	signed numKind = iota
	unsigned
	floating
)

// Number converts any integer or floating point value into a Num.
func Number(v any) (Num, bool) {
	if v == nil {
		return Num{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Num{kind: signed, i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Num{kind: unsigned, u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return Num{kind: floating, f: f, isNaN: math.IsNaN(f)}, true
	default:
		return Num{}, false
	}
}

// Compare returns -1, 0 or +1 depending on whether n is less than, equal to or greater than oth.
// The second result is false when the values are not ordered, which happens with NaN.
func (n Num) Compare(oth Num) (int, bool) {
	if n.isNaN || oth.isNaN {
		return 0, false
	}
	switch {
	case n.kind == signed && oth.kind == signed:
		return cmpInt(n.i, oth.i), true
	case n.kind == unsigned && oth.kind == unsigned:
		return cmpInt(n.u, oth.u), true
	case n.kind == signed && oth.kind == unsigned:
		if n.i < 0 {
			return -1, true
		}
		return cmpInt(uint64(n.i), oth.u), true
	case n.kind == unsigned && oth.kind == signed:
		c, ok := oth.Compare(n)
		return -c, ok
	default:
		return cmpInt(n.Float(), oth.Float()), true
	}
}

func (n Num) Equal(oth Num) bool {
	c, ok := n.Compare(oth)
	return ok && c == 0
}

func (n Num) Float() float64 {
	switch n.kind {
	case signed:
		return float64(n.i)
	case unsigned:
		return float64(n.u)
	default:
		return n.f
	}
}

func cmpInt[T int64 | uint64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
