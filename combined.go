package hamcrest

import (
	"strings"
)

type operator struct {
	token      string
	precedence int
}

var (
	and = operator{token: "and", precedence: 22}
	or  = operator{token: "or", precedence: 24}
)

// Combined is a logical combination of matchers.
//
// Both and Either start a fluent chain.
// Every And and Or call returns a new Combined that holds the previous chain as its first operand,
// so switching the operator halfway nests the chain instead of failing:
//
//	Both(a).And(b).Or(c) // (a and b) or c
type Combined struct {
	operator operator
	matchers []Matcher
}

// AllOf matches when every given matcher matches.
// Evaluation stops at the first mismatch. AllOf without matchers never matches.
func AllOf(ms ...any) *Combined {
	return &Combined{operator: and, matchers: asMatchers(ms)}
}

// AnyOf matches when at least one of the given matchers matches.
// Evaluation stops at the first match.
func AnyOf(ms ...any) *Combined {
	return &Combined{operator: or, matchers: asMatchers(ms)}
}

// Both starts a fluent chain that is continued with And.
func Both(m any) *Combined {
	return &Combined{operator: and, matchers: []Matcher{AsMatcher(m)}}
}

// Either starts a fluent chain that is continued with Or.
func Either(m any) *Combined {
	return &Combined{operator: or, matchers: []Matcher{AsMatcher(m)}}
}

// And requires m to match as well.
func (c *Combined) And(m any) *Combined {
	return &Combined{operator: and, matchers: []Matcher{c, AsMatcher(m)}}
}

// Or accepts the subject when m matches it.
func (c *Combined) Or(m any) *Combined {
	return &Combined{operator: or, matchers: []Matcher{c, AsMatcher(m)}}
}

// Operator is the token joining the operands in the description, "and" or "or".
func (c *Combined) Operator() string { return c.operator.token }

// Precedence decides the parentheses when combinations are nested.
func (c *Combined) Precedence() int { return c.operator.precedence }

func (c *Combined) Matches(subject any) bool {
	switch c.operator {
	case and:
		for _, m := range c.matchers {
			if !m.Matches(subject) {
				return false
			}
		}
		return len(c.matchers) != 0
	default:
		for _, m := range c.matchers {
			if m.Matches(subject) {
				return true
			}
		}
		return false
	}
}

// Describe joins the descriptions of the operands with the operator.
// Operands combined with another operator are parenthesized,
// operands combined with the same one are flattened into the list.
func (c *Combined) Describe() string {
	parts := make([]string, 0, len(c.matchers))
	for _, m := range c.matchers {
		d := m.Describe()
		if c.needsParens(m) {
			d = "(" + d + ")"
		}
		parts = append(parts, d)
	}
	return strings.Join(parts, " "+c.operator.token+" ")
}

func (c *Combined) DescribeMismatch(subject any) string { return describeMismatch(c, subject) }

func (c *Combined) needsParens(m Matcher) bool {
	if oth, ok := m.(*Combined); ok && len(oth.matchers) < 2 {
		return false
	}
	op, ok := m.(Operator)
	if !ok {
		return false
	}
	return op.Operator() != c.operator.token || c.operator.precedence < op.Precedence()
}

func (c *Combined) isCompound() bool {
	return 1 < len(c.matchers)
}
