package hamcrest

import (
	"go.llib.dev/hamcrest/internal/iterable"
)

const notHashMap = "value is a hash map (i.e., associative array)"

// hashMap materialises subject and reports whether it is map shaped,
// meaning its keys are not the indexes of a list.
func hashMap(subject any) (iterable.Collection, bool) {
	c, ok := iterable.Materialize(subject)
	if !ok || !c.IsMap() {
		return c, false
	}
	return c, true
}

type mapEntryMatcher struct {
	key   Matcher
	value Matcher
}

// HasKey matches maps with at least one key satisfying m.
// List shaped iterables, like slices or maps keyed by 0..n-1, never match.
func HasKey(m any) Matcher {
	return mapEntryMatcher{key: AsMatcher(m)}
}

// HasValue matches maps with at least one value satisfying m.
func HasValue(m any) Matcher {
	return mapEntryMatcher{value: AsMatcher(m)}
}

// HasEntry matches maps with an entry whose key satisfies key and whose value satisfies value.
func HasEntry(key, value any) Matcher {
	return mapEntryMatcher{key: AsMatcher(key), value: AsMatcher(value)}
}

func (m mapEntryMatcher) Matches(subject any) bool {
	c, ok := hashMap(subject)
	if !ok {
		return false
	}
	for _, e := range c.Entries {
		if m.key != nil && !m.key.Matches(e.Key) {
			continue
		}
		if m.value != nil && !m.value.Matches(e.Value) {
			continue
		}
		return true
	}
	return false
}

func (m mapEntryMatcher) Describe() string {
	switch {
	case m.key != nil && m.value != nil:
		return "is a hash map with a key that " + m.key.Describe() + " having a value that " + m.value.Describe()
	case m.key != nil:
		return "is a hash map with a key that " + m.key.Describe()
	default:
		return "is a hash map with a value that " + m.value.Describe()
	}
}

func (m mapEntryMatcher) DescribeMismatch(subject any) string {
	if _, ok := hashMap(subject); !ok {
		return notHashMap
	}
	return "value " + m.Describe()
}

type mapSizeMatcher struct {
	cardinality cardinality
}

// MapSize matches maps whose number of entries satisfies constraint.
// The accepted constraints are the same as for Size.
// Unlike the other map matchers MapSize accepts an empty iterable, so MapSize(IsEmpty()) can match.
func MapSize(constraint any) Matcher {
	return mapSizeMatcher{cardinality: newCardinality(constraint)}
}

// EmptyMap matches maps without entries.
func EmptyMap() Matcher {
	return MapSize(IsEmpty())
}

func (m mapSizeMatcher) Matches(subject any) bool {
	c, ok := m.collection(subject)
	return ok && m.cardinality.matches(c)
}

func (m mapSizeMatcher) collection(subject any) (iterable.Collection, bool) {
	c, ok := iterable.Materialize(subject)
	if !ok || (c.Len() != 0 && !c.IsMap()) {
		return c, false
	}
	return c, true
}

func (m mapSizeMatcher) Describe() string {
	return m.cardinality.describe("a hash map", "an empty hash map")
}

func (m mapSizeMatcher) DescribeMismatch(subject any) string {
	if _, ok := m.collection(subject); !ok {
		return notHashMap
	}
	return "value " + m.Describe()
}
