// Package gomegamatcher lets hamcrest matchers be used with gomega's Expect and Ω.
//
//	Expect([]int{2, 1, 3}).To(gomegamatcher.Wrap(hamcrest.InAnyOrder(1, 2, 3)))
package gomegamatcher

import (
	"github.com/onsi/gomega/types"

	"go.llib.dev/hamcrest"
)

// Wrap adapts m, a hamcrest.Matcher or a value to compare with hamcrest.Equal, into a gomega matcher.
func Wrap(m any) types.GomegaMatcher {
	return Matcher{Matcher: hamcrest.AsMatcher(m)}
}

// Matcher implements types.GomegaMatcher with a hamcrest.Matcher.
type Matcher struct {
	hamcrest.Matcher
}

func (m Matcher) Match(actual any) (bool, error) {
	return m.Matcher.Matches(actual), nil
}

func (m Matcher) FailureMessage(actual any) string {
	return hamcrest.FailureMessage(m.Matcher, actual)
}

// NegatedFailureMessage reports the failure of the matcher wrapped in hamcrest.Not.
func (m Matcher) NegatedFailureMessage(actual any) string {
	return hamcrest.FailureMessage(hamcrest.Not(m.Matcher), actual)
}
