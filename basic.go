package hamcrest

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"go.llib.dev/hamcrest/internal/equality"
	"go.llib.dev/hamcrest/internal/exporter"
)

// predicate is the building block of the matchers that need nothing more than a test and a fixed description.
type predicate struct {
	description string
	test        func(subject any) bool
}

func (p predicate) Matches(subject any) bool { return p.test(subject) }

func (p predicate) Describe() string { return p.description }

func (p predicate) DescribeMismatch(subject any) string { return describeMismatch(p, subject) }

// Anything matches every value.
func Anything() Matcher {
	return predicate{
		description: "is anything",
		test:        func(any) bool { return true },
	}
}

// Nil matches nil, and typed nil values of pointers, maps, slices, channels, functions and interfaces.
func Nil() Matcher {
	return predicate{
		description: "is nil",
		test:        isNil,
	}
}

// NotNil matches any subject that Nil doesn't.
func NotNil() Matcher {
	return Not(Nil())
}

// Is returns m unchanged when it is a Matcher, and Equal(m) otherwise.
// It exists for readability: AssertThat(t, v, Is(Not(Nil()))).
func Is(m any) Matcher {
	return AsMatcher(m)
}

type equalMatcher struct {
	expected any
}

// Equal matches values deeply equal to expected.
// Numbers are compared by value regardless of their concrete type.
func Equal(expected any) Matcher {
	return equalMatcher{expected: expected}
}

func (m equalMatcher) Matches(subject any) bool {
	return equality.Loose(subject, m.expected)
}

func (m equalMatcher) Describe() string {
	return "is equal to " + exporter.Export(m.expected)
}

func (m equalMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

// Same matches the very same instance as expected.
// Reference types must point to the same memory, other values must have the same type and value.
func Same(expected any) Matcher {
	return predicate{
		description: "is identical to " + exporter.Export(expected),
		test: func(subject any) bool {
			return equality.Strict(subject, expected)
		},
	}
}

// OneOf matches a value equal to any of the given values.
func OneOf(values ...any) Matcher {
	exported := make([]string, 0, len(values))
	for _, v := range values {
		exported = append(exported, exporter.Export(v))
	}
	return predicate{
		description: "is one of [" + strings.Join(exported, ", ") + "]",
		test: func(subject any) bool {
			for _, v := range values {
				if equality.Loose(subject, v) {
					return true
				}
			}
			return false
		},
	}
}

// IsA matches values whose dynamic type is T, or implements T when T is an interface.
func IsA[T any]() Matcher {
	return predicate{
		description: "is an instance of " + reflect.TypeFor[T]().String(),
		test: func(subject any) bool {
			_, ok := subject.(T)
			return ok
		},
	}
}

// NotANumber matches float NaN values.
func NotANumber() Matcher {
	return predicate{
		description: "is nan",
		test: func(subject any) bool {
			n, ok := equality.Number(subject)
			return ok && math.IsNaN(n.Float())
		},
	}
}

// CloseTo matches numbers within delta of operand.
func CloseTo(operand, delta float64) Matcher {
	return predicate{
		description: fmt.Sprintf("is equal to %s with delta <%s>", exporter.Export(operand), exporter.Export(delta)),
		test: func(subject any) bool {
			n, ok := equality.Number(subject)
			if !ok {
				return false
			}
			return math.Abs(n.Float()-operand) <= delta
		},
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
