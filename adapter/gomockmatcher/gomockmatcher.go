// Package gomockmatcher lets hamcrest matchers be used as gomock argument matchers.
//
//	store.EXPECT().Put(gomockmatcher.Wrap(hamcrest.StartsWith("user:")), gomock.Any())
package gomockmatcher

import (
	"github.com/golang/mock/gomock"

	"go.llib.dev/hamcrest"
)

// Wrap adapts m, a hamcrest.Matcher or a value to compare with hamcrest.Equal, into a gomock.Matcher.
// The result is also a gomock.GotFormatter, so unexpected calls are reported with the hamcrest mismatch.
func Wrap(m any) gomock.Matcher {
	return Matcher{matcher: hamcrest.AsMatcher(m)}
}

// Matcher is a gomock.Matcher and gomock.GotFormatter backed by a hamcrest.Matcher.
type Matcher struct {
	matcher hamcrest.Matcher
}

func (m Matcher) Matches(x any) bool {
	return m.matcher.Matches(x)
}

// String is the hamcrest description, printed by gomock as the expected argument.
func (m Matcher) String() string {
	return m.matcher.Describe()
}

// Got renders the received argument as the hamcrest mismatch.
func (m Matcher) Got(got any) string {
	return m.matcher.DescribeMismatch(got)
}
