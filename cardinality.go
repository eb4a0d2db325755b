package hamcrest

import (
	"fmt"
	"math"
	"reflect"

	"go.llib.dev/hamcrest/internal/iterable"
)

type countMatcher struct {
	count int
}

// Count matches iterables with exactly n items.
func Count(n int) Matcher {
	return countMatcher{count: n}
}

// SameSizeAs matches iterables with as many items as other.
// It panics with ErrUsage when other is not iterable.
func SameSizeAs(other any) Matcher {
	c, ok := iterable.Materialize(other)
	if !ok {
		usage("SameSizeAs expects an iterable, received %T", other)
	}
	return countMatcher{count: c.Len()}
}

func (m countMatcher) Matches(subject any) bool {
	c, ok := iterable.Materialize(subject)
	return ok && c.Len() == m.count
}

func (m countMatcher) Describe() string {
	return fmt.Sprintf("count matches %d", m.count)
}

func (m countMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

type emptyMatcher struct{}

// IsEmpty matches nil, empty text and iterables without items.
func IsEmpty() Matcher {
	return emptyMatcher{}
}

func (emptyMatcher) Matches(subject any) bool {
	if isNil(subject) {
		return true
	}
	if rv := reflect.ValueOf(subject); rv.Kind() == reflect.String {
		return rv.Len() == 0
	}
	c, ok := iterable.Materialize(subject)
	return ok && c.Len() == 0
}

func (emptyMatcher) Describe() string { return "is empty" }

func (m emptyMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

// cardinality is a constraint on the number of items of a collection.
type cardinality struct {
	constraint Matcher
}

const cardinalityAllowList = "Count, Equal, GreaterThan, GreaterThanOrEqualTo, IsEmpty, LessThan, LessThanOrEqualTo, or SameSizeAs"

// newCardinality accepts an integer or one of the allowed constraints, and panics with ErrUsage for anything else.
func newCardinality(constraint any) cardinality {
	switch c := constraint.(type) {
	case countMatcher, emptyMatcher, ordering, equalMatcher:
		return cardinality{constraint: c.(Matcher)}
	}
	if rv := reflect.ValueOf(constraint); rv.IsValid() {
		switch {
		case rv.CanInt():
			return cardinality{constraint: Count(int(rv.Int()))}
		case rv.CanUint():
			n := rv.Uint()
			if uint64(math.MaxInt) < n {
				usage("Count %d is out of the int range", n)
			}
			return cardinality{constraint: Count(int(n))}
		}
	}
	usage("Constraint must be one of the constraints: %s. Received %T", cardinalityAllowList, constraint)
	return cardinality{}
}

func (c cardinality) matches(coll iterable.Collection) bool {
	switch m := c.constraint.(type) {
	case countMatcher:
		return coll.Len() == m.count
	case emptyMatcher:
		return coll.Len() == 0
	default:
		return m.Matches(coll.Len())
	}
}

// describe renders the constraint for the kind of collection, like "an iterable" or "a hash map".
func (c cardinality) describe(a, empty string) string {
	switch m := c.constraint.(type) {
	case countMatcher:
		return fmt.Sprintf("is %s with a %s", a, m.Describe())
	case emptyMatcher:
		return "is " + empty
	default:
		return fmt.Sprintf("is %s with a size that %s", a, m.Describe())
	}
}
