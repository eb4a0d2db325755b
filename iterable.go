package hamcrest

import (
	"fmt"
	"strings"

	"go.llib.dev/hamcrest/internal/equality"
	"go.llib.dev/hamcrest/internal/iterable"
)

const notIterable = "value is an iterable"

type itemOrder int

const (
	inOrder itemOrder = iota
	inAnyOrder
	inRelativeOrder
)

func (o itemOrder) String() string {
	switch o {
	case inAnyOrder:
		return "in any order"
	case inRelativeOrder:
		return "in relative order"
	default:
		return "in order"
	}
}

type itemsMatcher struct {
	order    itemOrder
	matchers []Matcher
}

// InOrder matches iterables whose items satisfy the given matchers position by position.
// The iterable must have exactly as many items as matchers.
// It panics with ErrUsage when no matcher is given.
func InOrder(ms ...any) Matcher {
	return newItemsMatcher("InOrder", inOrder, ms)
}

// InAnyOrder matches iterables whose items can each be paired with a distinct matcher.
// The iterable must have exactly as many items as matchers.
//
// Matchers are assigned greedily: each matcher, in the given order, takes the first unclaimed item it matches.
// An ambiguous set of matchers may therefore miss a pairing that exists.
func InAnyOrder(ms ...any) Matcher {
	return newItemsMatcher("InAnyOrder", inAnyOrder, ms)
}

// InRelativeOrder matches iterables that contain items satisfying the given matchers in that order,
// not necessarily next to each other.
func InRelativeOrder(ms ...any) Matcher {
	return newItemsMatcher("InRelativeOrder", inRelativeOrder, ms)
}

func newItemsMatcher(name string, order itemOrder, ms []any) itemsMatcher {
	if len(ms) == 0 {
		usage("%s: at least one matcher must be provided", name)
	}
	return itemsMatcher{order: order, matchers: asMatchers(ms)}
}

func (m itemsMatcher) Matches(subject any) bool {
	c, ok := iterable.Materialize(subject)
	if !ok {
		return false
	}
	items := c.Values()
	switch m.order {
	case inAnyOrder:
		return len(items) == len(m.matchers) && m.matchesAnyOrder(items)
	case inRelativeOrder:
		return m.matchesRelativeOrder(items)
	default:
		return len(items) == len(m.matchers) && m.matchesInOrder(items)
	}
}

func (m itemsMatcher) matchesInOrder(items []any) bool {
	for i, matcher := range m.matchers {
		if !matcher.Matches(items[i]) {
			return false
		}
	}
	return true
}

func (m itemsMatcher) matchesAnyOrder(items []any) bool {
	claimed := make([]bool, len(items))
	var n int
	for _, matcher := range m.matchers {
		for i, item := range items {
			if claimed[i] || !matcher.Matches(item) {
				continue
			}
			claimed[i] = true
			n++
			break
		}
	}
	return n == len(items)
}

func (m itemsMatcher) matchesRelativeOrder(items []any) bool {
	var cursor int
	for _, item := range items {
		if cursor == len(m.matchers) {
			break
		}
		if m.matchers[cursor].Matches(item) {
			cursor++
		}
	}
	return cursor == len(m.matchers)
}

func (m itemsMatcher) Describe() string {
	return fmt.Sprintf("is an iterable where each item (%s) %s", m.order, strings.Join(describeAll(m.matchers), " and "))
}

func (m itemsMatcher) DescribeMismatch(subject any) string {
	c, ok := iterable.Materialize(subject)
	if !ok {
		return notIterable
	}
	if m.order != inRelativeOrder && c.Len() != len(m.matchers) {
		return fmt.Sprintf("value is an iterable that contains %d items", len(m.matchers))
	}
	return "value " + m.Describe()
}

type hasItemsMatcher struct {
	matchers []Matcher
}

// HasItem matches iterables with at least one item satisfying m.
func HasItem(m any) Matcher {
	return hasItemsMatcher{matchers: []Matcher{AsMatcher(m)}}
}

// HasItems matches iterables that have, for each given matcher, at least one item satisfying it.
// A single item may satisfy more than one matcher.
// It panics with ErrUsage when no matcher is given.
func HasItems(ms ...any) Matcher {
	if len(ms) == 0 {
		usage("HasItems: at least one matcher must be provided")
	}
	return hasItemsMatcher{matchers: asMatchers(ms)}
}

func (m hasItemsMatcher) Matches(subject any) bool {
	c, ok := iterable.Materialize(subject)
	if !ok {
		return false
	}
	items := c.Values()
	for _, matcher := range m.matchers {
		if !hasItem(items, matcher) {
			return false
		}
	}
	return true
}

func hasItem(items []any, m Matcher) bool {
	for _, item := range items {
		if m.Matches(item) {
			return true
		}
	}
	return false
}

func (m hasItemsMatcher) Describe() string {
	return "is an iterable that contains an item that " + strings.Join(describeAll(m.matchers), " and an item that ")
}

func (m hasItemsMatcher) DescribeMismatch(subject any) string {
	if !iterable.Is(subject) {
		return notIterable
	}
	return "value " + m.Describe()
}

type everyItemMatcher struct {
	matcher Matcher
}

// EveryItem matches iterables whose every item satisfies m.
// An empty iterable matches.
func EveryItem(m any) Matcher {
	return everyItemMatcher{matcher: AsMatcher(m)}
}

func (m everyItemMatcher) Matches(subject any) bool {
	c, ok := iterable.Materialize(subject)
	if !ok {
		return false
	}
	for _, item := range c.Values() {
		if !m.matcher.Matches(item) {
			return false
		}
	}
	return true
}

func (m everyItemMatcher) Describe() string {
	return "is an iterable in which each item " + m.matcher.Describe()
}

func (m everyItemMatcher) DescribeMismatch(subject any) string {
	if !iterable.Is(subject) {
		return notIterable
	}
	return "value " + m.Describe()
}

type inMatcher struct {
	items  []any
	strict bool
}

// In matches values equal to one of the items of collection.
// It panics with ErrUsage when collection is not iterable.
func In(collection any) Matcher {
	return newInMatcher("In", collection, false)
}

// InStrict matches values identical to one of the items of collection, see Same.
func InStrict(collection any) Matcher {
	return newInMatcher("InStrict", collection, true)
}

func newInMatcher(name string, collection any, strict bool) inMatcher {
	c, ok := iterable.Materialize(collection)
	if !ok {
		usage("%s expects an iterable collection, received %T", name, collection)
	}
	return inMatcher{items: c.Values(), strict: strict}
}

func (m inMatcher) Matches(subject any) bool {
	eq := equality.Loose
	if m.strict {
		eq = equality.Strict
	}
	for _, item := range m.items {
		if eq(subject, item) {
			return true
		}
	}
	return false
}

func (m inMatcher) Describe() string {
	if m.strict {
		return "is found in the iterable (using strict comparison)"
	}
	return "is found in the iterable"
}

func (m inMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

type sizeMatcher struct {
	cardinality cardinality
}

// Size matches iterables whose number of items satisfies constraint.
//
// The constraint is either an integer, which is the same as Count,
// or one of Count, Equal, GreaterThan, GreaterThanOrEqualTo, IsEmpty, LessThan, LessThanOrEqualTo and SameSizeAs.
// Any other constraint panics with ErrUsage.
func Size(constraint any) Matcher {
	return sizeMatcher{cardinality: newCardinality(constraint)}
}

// EmptyIterable matches iterables without items.
func EmptyIterable() Matcher {
	return Size(IsEmpty())
}

func (m sizeMatcher) Matches(subject any) bool {
	c, ok := iterable.Materialize(subject)
	return ok && m.cardinality.matches(c)
}

func (m sizeMatcher) Describe() string {
	return m.cardinality.describe("an iterable", "an empty iterable")
}

func (m sizeMatcher) DescribeMismatch(subject any) string {
	if !iterable.Is(subject) {
		return notIterable
	}
	return "value " + m.Describe()
}
