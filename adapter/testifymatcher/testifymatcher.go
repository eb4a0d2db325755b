// Package testifymatcher connects hamcrest matchers to testify.
//
// Argument turns a matcher into an argument of mock.On,
// and Assert is a testify style assertion built on a matcher.
package testifymatcher

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go.llib.dev/hamcrest"
)

// Argument returns a mock.On argument that accepts the values satisfying m.
//
//	store.On("Put", testifymatcher.Argument(hamcrest.StartsWith("user:")), mock.Anything)
func Argument(m any) any {
	matcher := hamcrest.AsMatcher(m)
	return mock.MatchedBy(func(actual any) bool {
		return matcher.Matches(actual)
	})
}

// Assert checks subject against m and reports the hamcrest failure message through testify on mismatch.
func Assert(t assert.TestingT, subject, m any, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	matcher := hamcrest.AsMatcher(m)
	if matcher.Matches(subject) {
		return true
	}
	return assert.Fail(t, hamcrest.FailureMessage(matcher, subject), msgAndArgs...)
}
