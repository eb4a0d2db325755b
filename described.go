package hamcrest

import (
	"fmt"
	"strings"

	"go.llib.dev/hamcrest/internal/exporter"
)

type describedMatcher struct {
	matcher     Matcher
	description string
	values      []any
}

// DescribedAs wraps a matcher and replaces its failure description with the given one.
//
// The description is a fmt format, and values are substituted into it.
// Text values (strings and fmt.Stringer implementations) are inserted verbatim,
// other values are rendered in a shortened form for the %s and %v verbs.
// Without values the description is used as is, so a literal % needs no escaping.
// Values beyond the ones the format consumes are ignored.
//
//	DescribedAs("the answer is %s", Equal(42), 42)
func DescribedAs(description string, m any, values ...any) Matcher {
	return describedMatcher{matcher: AsMatcher(m), description: description, values: values}
}

func (m describedMatcher) Matches(subject any) bool {
	return m.matcher.Matches(subject)
}

// Describe is empty, the custom description only shows up in the failure message.
func (m describedMatcher) Describe() string { return "" }

func (m describedMatcher) DescribeMismatch(any) string {
	return render(m.description, m.values)
}

type additionallyDescribedMatcher struct {
	matcher     Matcher
	description string
	values      []any
}

// AdditionallyDescribedAs wraps a matcher and appends a description to its own,
// giving the failure message additional context.
// The description follows the same substitution rules as DescribedAs.
func AdditionallyDescribedAs(description string, m any, values ...any) Matcher {
	return additionallyDescribedMatcher{matcher: AsMatcher(m), description: description, values: values}
}

func (m additionallyDescribedMatcher) Matches(subject any) bool {
	return m.matcher.Matches(subject)
}

func (m additionallyDescribedMatcher) Describe() string {
	return m.matcher.Describe()
}

func (m additionallyDescribedMatcher) DescribeMismatch(subject any) string {
	return m.matcher.DescribeMismatch(subject)
}

func (m additionallyDescribedMatcher) AdditionalDescription(any) string {
	return render(m.description, m.values)
}

func render(format string, values []any) string {
	if len(values) == 0 {
		return format
	}
	args := make([]any, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case string:
			args = append(args, v)
		case fmt.Stringer:
			args = append(args, v.String())
		default:
			args = append(args, shortened{value: v})
		}
	}
	if n, ok := consumed(format); ok && n < len(args) {
		args = args[:n]
	}
	return fmt.Sprintf(format, args...)
}

// consumed counts the arguments the format directives of format read.
// Formats with explicit argument indexes are not counted.
func consumed(format string) (int, bool) {
	var n int
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		for i++; i < len(format); i++ {
			c := format[i]
			if c == '[' {
				return 0, false
			}
			if c == '*' {
				n++
				continue
			}
			if strings.IndexByte("+-# 0123456789.", c) < 0 {
				if c != '%' {
					n++
				}
				break
			}
		}
	}
	return n, true
}

// shortened formats its value with the shortened export for the %s and %v verbs,
// and defers to the value itself for every other verb, so %d or %.2f keep working.
type shortened struct {
	value any
}

func (s shortened) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		_, _ = fmt.Fprint(f, exporter.Shortened(s.value))
	default:
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), s.value)
	}
}
