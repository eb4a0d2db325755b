// Package exporter renders arbitrary values into short, deterministic text
// for failure messages.
package exporter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"
	"go.llib.dev/hamcrest/internal/config"
)

const ellipsis = "..."

// Export renders a value in full, quoting text and spelling out composite values.
func Export(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprint(v)
	case reflect.Struct:
		return rv.Type().String() + printer().Sprintf("%+v", v)
	case reflect.Ptr:
		if rv.IsNil() {
			return fmt.Sprintf("(%s)(nil)", rv.Type().String())
		}
		return printer().Sprintf("%+v", v)
	default:
		return printer().Sprintf("%+v", v)
	}
}

// Shortened renders a value like Export,
// but abbreviates long text and non-empty composite values.
func Shortened(v any) string {
	if v == nil {
		return "nil"
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(truncate(rv.String(), config.Default().ExportLength))
	case reflect.Struct:
		return rv.Type().String() + "{" + ellipsis + "}"
	case reflect.Slice, reflect.Array, reflect.Map:
		if rv.Len() == 0 {
			return rv.Type().String() + "{}"
		}
		return rv.Type().String() + "{" + ellipsis + "}"
	case reflect.Ptr:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			return rv.Type().String() + "{" + ellipsis + "}"
		}
		return Export(v)
	default:
		return Export(v)
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	var b strings.Builder
	var n int
	for _, r := range s {
		if n == max {
			break
		}
		b.WriteRune(r)
		n++
	}
	b.WriteString(ellipsis)
	return b.String()
}

func printer() *spew.ConfigState {
	return &spew.ConfigState{
		Indent:                  " ",
		MaxDepth:                config.Default().ExportDepth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
}
