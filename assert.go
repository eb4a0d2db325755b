package hamcrest

import (
	"strings"

	"github.com/rs/zerolog"

	"go.llib.dev/hamcrest/internal/config"
)

// TB is the subset of testing.TB the assertions need.
type TB interface {
	Helper()
	Log(args ...any)
	Error(args ...any)
	FailNow()
}

// AssertThat checks subject against m, which is a Matcher or a value to compare with Equal.
// On mismatch it reports the failure message and stops the test.
//
//	hamcrest.AssertThat(t, map[string]int{"foo": 1}, hamcrest.HasKey("foo"))
func AssertThat(tb TB, subject, m any) {
	tb.Helper()
	if !ExpectThat(tb, subject, m) {
		tb.FailNow()
	}
}

// ExpectThat checks subject against m like AssertThat,
// but it lets the test continue after reporting a mismatch.
func ExpectThat(tb TB, subject, m any) bool {
	tb.Helper()
	matcher := AsMatcher(m)
	if matcher.Matches(subject) {
		return true
	}
	log := logger(tb)
	log.Debug().
		Str("matcher", matcher.Describe()).
		Str("mismatch", matcher.DescribeMismatch(subject)).
		Msg("assertion failed")
	tb.Error(FailureMessage(matcher, subject))
	return false
}

// FailureMessage renders the sentence reported for a subject that doesn't satisfy m:
//
//	Failed asserting that "bar" is equal to "foo".
//
// An additional description, when m has one, follows on its own line.
func FailureMessage(m Matcher, subject any) string {
	msg := "Failed asserting that " + m.DescribeMismatch(subject) + "."
	if ad, ok := m.(AdditionalDescriber); ok {
		if extra := ad.AdditionalDescription(subject); extra != "" {
			msg += "\n" + extra
		}
	}
	return msg
}

func logger(tb TB) zerolog.Logger {
	return zerolog.New(tbWriter{tb: tb}).Level(config.Default().LogLevel)
}

// tbWriter forwards log lines to the test's own log.
type tbWriter struct {
	tb TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Helper()
	w.tb.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}
