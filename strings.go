package hamcrest

import (
	"reflect"
	"regexp"
	"strings"

	"go.llib.dev/hamcrest/internal/exporter"
	"go.llib.dev/hamcrest/internal/textual"
)

// textMatcher tests subjects that can be represented as text.
// Strings, byte slices, fmt.Stringer and error implementations, numbers and booleans are accepted,
// anything else is a mismatch.
type textMatcher struct {
	description string
	test        func(text string) bool
}

func (m textMatcher) Matches(subject any) bool {
	text, ok := textual.Coerce(subject)
	return ok && m.test(text)
}

func (m textMatcher) Describe() string { return m.description }

func (m textMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

func requireText(name, arg, value string) {
	if value == "" {
		usage("%s: %s must not be empty", name, arg)
	}
}

// StartsWith panics with ErrUsage when prefix is empty.
func StartsWith(prefix string) Matcher {
	requireText("StartsWith", "prefix", prefix)
	return textMatcher{
		description: "starts with " + exporter.Export(prefix),
		test:        func(text string) bool { return strings.HasPrefix(text, prefix) },
	}
}

// EndsWith panics with ErrUsage when suffix is empty.
func EndsWith(suffix string) Matcher {
	requireText("EndsWith", "suffix", suffix)
	return textMatcher{
		description: "ends with " + exporter.Export(suffix),
		test:        func(text string) bool { return strings.HasSuffix(text, suffix) },
	}
}

// StartsWithIgnoringCase panics with ErrUsage when prefix is empty.
func StartsWithIgnoringCase(prefix string) Matcher {
	requireText("StartsWithIgnoringCase", "prefix", prefix)
	folded := textual.Fold(prefix)
	return textMatcher{
		description: "starts with " + exporter.Export(prefix) + ", ignoring case",
		test:        func(text string) bool { return strings.HasPrefix(textual.Fold(text), folded) },
	}
}

// EndsWithIgnoringCase panics with ErrUsage when suffix is empty.
func EndsWithIgnoringCase(suffix string) Matcher {
	requireText("EndsWithIgnoringCase", "suffix", suffix)
	folded := textual.Fold(suffix)
	return textMatcher{
		description: "ends with " + exporter.Export(suffix) + ", ignoring case",
		test:        func(text string) bool { return strings.HasSuffix(textual.Fold(text), folded) },
	}
}

// ContainsString matches text that contains substr.
func ContainsString(substr string) Matcher {
	return textMatcher{
		description: "contains " + exporter.Export(substr),
		test:        func(text string) bool { return strings.Contains(text, substr) },
	}
}

// ContainsStringIgnoringCase is ContainsString with case folded text.
func ContainsStringIgnoringCase(substr string) Matcher {
	folded := textual.Fold(substr)
	return textMatcher{
		description: "contains " + exporter.Export(substr) + ", ignoring case",
		test:        func(text string) bool { return strings.Contains(textual.Fold(text), folded) },
	}
}

// EqualToIgnoringCase matches text equal to expected under Unicode case folding.
func EqualToIgnoringCase(expected string) Matcher {
	return textMatcher{
		description: "is equal to " + exporter.Export(expected) + ", ignoring case",
		test:        func(text string) bool { return textual.EqualFold(text, expected) },
	}
}

// MatchesRegex matches text containing a match of the regular expression pattern.
// It panics with ErrUsage when the pattern doesn't compile.
func MatchesRegex(pattern string) Matcher {
	rgx, err := regexp.Compile(pattern)
	if err != nil {
		usage("MatchesRegex: invalid pattern %q: %v", pattern, err)
	}
	return textMatcher{
		description: "matches regular expression " + exporter.Export(pattern),
		test:        rgx.MatchString,
	}
}

// EmptyString matches the empty text.
func EmptyString() Matcher {
	return textMatcher{
		description: "is an empty string",
		test:        func(text string) bool { return text == "" },
	}
}

// EmptyOrNilString matches nil or the empty text.
func EmptyOrNilString() Matcher {
	return orNil("is nil or an empty string", EmptyString())
}

// BlankString matches text made only of whitespace and control characters, the empty text included.
func BlankString() Matcher {
	return textMatcher{
		description: "is a blank string",
		test:        textual.IsBlank,
	}
}

// BlankOrNilString matches nil or blank text.
func BlankOrNilString() Matcher {
	return orNil("is nil or a blank string", BlankString())
}

func orNil(description string, m Matcher) Matcher {
	return predicate{
		description: description,
		test: func(subject any) bool {
			return isNil(subject) || m.Matches(subject)
		},
	}
}

type compressedWhitespaceMatcher struct {
	expected string
}

// EqualToCompressingWhitespace matches strings equal to expected, ignoring case,
// once both are trimmed and every run of whitespace or control characters is collapsed into a single space.
// Only string subjects can match.
func EqualToCompressingWhitespace(expected string) Matcher {
	return compressedWhitespaceMatcher{expected: expected}
}

func (m compressedWhitespaceMatcher) Matches(subject any) bool {
	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.String {
		return false
	}
	return textual.EqualFold(textual.CompressWhitespace(rv.String()), textual.CompressWhitespace(m.expected))
}

func (m compressedWhitespaceMatcher) Describe() string {
	if strings.Contains(m.expected, "\n") {
		return "equals <text> when compressing whitespace"
	}
	return "equals " + exporter.Export(m.expected) + " when compressing whitespace"
}

func (m compressedWhitespaceMatcher) DescribeMismatch(subject any) string {
	return describeMismatch(m, subject)
}
