package hamcrest

import "strings"

type notMatcher struct {
	matcher Matcher
}

// Not inverts the given matcher.
func Not(m any) Matcher {
	return notMatcher{matcher: AsMatcher(m)}
}

func (m notMatcher) Matches(subject any) bool {
	return !m.matcher.Matches(subject)
}

func (m notMatcher) Describe() string {
	return negate(m.matcher)
}

func (m notMatcher) DescribeMismatch(subject any) string { return describeMismatch(m, subject) }

// negations holds leading verbs and their negated form.
var negations = []struct{ verb, negated string }{
	{verb: "value is ", negated: "value is not "},
	{verb: "is ", negated: "is not "},
	{verb: "contains ", negated: "does not contain "},
	{verb: "has ", negated: "does not have "},
	{verb: "ends with ", negated: "does not end with "},
	{verb: "starts with ", negated: "does not start with "},
	{verb: "equals ", negated: "does not equal "},
	{verb: "matches ", negated: "does not match "},
}

func negate(m Matcher) string {
	switch m := m.(type) {
	case notMatcher:
		return m.matcher.Describe()
	case *Combined:
		if m.isCompound() {
			return "not (" + m.Describe() + ")"
		}
	}
	d := m.Describe()
	for _, n := range negations {
		if rest, ok := strings.CutPrefix(d, n.verb); ok {
			return n.negated + rest
		}
	}
	if d == "" {
		return "not"
	}
	return "not " + d
}
