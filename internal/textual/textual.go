// Package textual holds the text handling shared by the string matchers.
package textual

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Coerce converts v into text.
// Accepted values are string kinds, byte slices, fmt.Stringer and error implementations, numbers and booleans.
// Anything else, nil included, is reported as not coercible.
func Coerce(v any) (string, bool) {
	switch v := v.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case fmt.Stringer:
		if isNilPointer(v) {
			return "", false
		}
		return v.String(), true
	case error:
		if isNilPointer(v) {
			return "", false
		}
		return v.Error(), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return string(rv.Bytes()), true
		}
	}
	return "", false
}

// Fold maps s to its case folded form, suitable for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal ignoring case.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}

// CompressWhitespace trims s and collapses every run of separator and control characters into a single space.
func CompressWhitespace(s string) string {
	var (
		b       strings.Builder
		pending bool
	)
	for _, r := range s {
		if isSpace(r) {
			pending = true
			continue
		}
		if pending && b.Len() != 0 {
			b.WriteByte(' ')
		}
		pending = false
		b.WriteRune(r)
	}
	return b.String()
}

// IsBlank reports whether s holds nothing but whitespace and control characters.
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !isSpace(r) }) < 0
}

func isSpace(r rune) bool {
	return unicode.In(r, unicode.Z, unicode.C) || unicode.IsSpace(r)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
