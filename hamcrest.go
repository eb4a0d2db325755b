// Package hamcrest implements composable matchers that describe the expected shape of a value,
// and render a readable sentence when a value doesn't have that shape.
//
// A Matcher is a predicate with a description.
// Matchers combine through AllOf, AnyOf, Both, Either and Not,
// and every constructor that expects a Matcher also accepts a plain value,
// which is then compared with Equal.
//
//	hamcrest.AssertThat(t, []int{2, 1, 3}, hamcrest.InAnyOrder(1, 2, 3))
//	hamcrest.AssertThat(t, "  a   b  ", hamcrest.EqualToCompressingWhitespace("a b"))
package hamcrest

import (
	"go.llib.dev/hamcrest/internal/exporter"
)

// Matcher is a predicate that can describe itself.
//
// Implementations are expected to be immutable values,
// so a single Matcher can be evaluated many times, even concurrently.
type Matcher interface {
	// Matches reports whether the subject satisfies the Matcher.
	// Matches never panics for subjects of an unexpected shape, it reports false instead.
	Matches(subject any) bool
	// Describe returns the expectation as a verb phrase, like "is equal to 42".
	Describe() string
	// DescribeMismatch returns the second half of the sentence "Failed asserting that ..." for the given subject.
	DescribeMismatch(subject any) string
}

// AdditionalDescriber is an optional Matcher capability.
// The assertion layer prints the additional description on its own line after the mismatch.
type AdditionalDescriber interface {
	AdditionalDescription(subject any) string
}

// Operator is implemented by the logical combinators.
// A lower Precedence binds tighter.
type Operator interface {
	Operator() string
	Precedence() int
}

// AsMatcher returns v when it is already a Matcher,
// otherwise it wraps v into an Equal matcher.
func AsMatcher(v any) Matcher {
	if m, ok := v.(Matcher); ok {
		return m
	}
	return Equal(v)
}

func asMatchers(vs []any) []Matcher {
	ms := make([]Matcher, 0, len(vs))
	for _, v := range vs {
		ms = append(ms, AsMatcher(v))
	}
	return ms
}

func describeMismatch(m Matcher, subject any) string {
	return exporter.Export(subject) + " " + m.Describe()
}

func describeAll(ms []Matcher) []string {
	ds := make([]string, 0, len(ms))
	for _, m := range ms {
		ds = append(ds, m.Describe())
	}
	return ds
}
