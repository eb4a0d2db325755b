package hamcrest

import (
	"reflect"
	"strings"

	"go.llib.dev/hamcrest/internal/equality"
	"go.llib.dev/hamcrest/internal/exporter"
)

type ordering struct {
	operand any
	verb    string
	accept  func(cmp int) bool
}

// GreaterThan matches values ordered after operand.
//
// Ordered values are numbers of any kind, strings,
// and types with a `Compare(T) int` or a `Cmp(T) int` method, like time.Time or *big.Int.
// A subject that can't be ordered against operand is a mismatch.
func GreaterThan(operand any) Matcher {
	return ordering{operand: operand, verb: "is greater than", accept: func(cmp int) bool { return 0 < cmp }}
}

// GreaterThanOrEqualTo matches subjects ordered after or equal to operand.
func GreaterThanOrEqualTo(operand any) Matcher {
	return ordering{operand: operand, verb: "is greater than or equal to", accept: func(cmp int) bool { return 0 <= cmp }}
}

// LessThan matches subjects ordered before operand.
func LessThan(operand any) Matcher {
	return ordering{operand: operand, verb: "is less than", accept: func(cmp int) bool { return cmp < 0 }}
}

// LessThanOrEqualTo matches subjects ordered before or equal to operand.
func LessThanOrEqualTo(operand any) Matcher {
	return ordering{operand: operand, verb: "is less than or equal to", accept: func(cmp int) bool { return cmp <= 0 }}
}

func (m ordering) Matches(subject any) bool {
	cmp, ok := compare(subject, m.operand)
	return ok && m.accept(cmp)
}

func (m ordering) Describe() string {
	return m.verb + " " + exporter.Export(m.operand)
}

func (m ordering) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

// compare returns -1, 0 or +1 depending on whether a is less than, equal to or greater than b.
// The second result is false when a and b are not ordered.
func compare(a, b any) (int, bool) {
	if na, ok := equality.Number(a); ok {
		nb, ok := equality.Number(b)
		if !ok {
			return 0, false
		}
		return na.Compare(nb)
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() {
		return 0, false
	}
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return strings.Compare(ra.String(), rb.String()), true
	}
	for _, name := range []string{"Compare", "Cmp"} {
		if cmp, ok := callCompare(ra, name, rb); ok {
			return cmp, true
		}
	}
	return 0, false
}

func callCompare(rv reflect.Value, name string, arg reflect.Value) (cmp int, ok bool) {
	method := rv.MethodByName(name)
	if !method.IsValid() {
		return 0, false
	}
	typ := method.Type()
	if typ.NumIn() != 1 || typ.NumOut() != 1 || !arg.Type().AssignableTo(typ.In(0)) {
		return 0, false
	}
	if !isIntKind(typ.Out(0).Kind()) {
		return 0, false
	}
	defer func() {
		if recover() != nil {
			cmp, ok = 0, false
		}
	}()
	switch out := method.Call([]reflect.Value{arg})[0].Int(); {
	case out < 0:
		return -1, true
	case 0 < out:
		return 1, true
	default:
		return 0, true
	}
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}
