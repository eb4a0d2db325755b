// Package iterable materialises iterable subjects into an ordered list of key/value entries,
// so matchers can take multiple passes over them and inspect their shape.
//
// Supported iterables are slices, arrays, maps, receivable channels,
// iter.Seq, iter.Seq2, and pull iterators with `Next() bool` and `Value() T` methods.
// Text is not considered iterable.
package iterable

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"go.llib.dev/hamcrest/internal/equality"
)

type Entry struct {
	Key   any
	Value any
}

// Collection is a materialised iterable.
type Collection struct {
	Entries []Entry
	// keyed tells if the keys came from the subject itself (map, iter.Seq2)
	// rather than being positional indexes.
	keyed bool
}

func (c Collection) Len() int { return len(c.Entries) }

func (c Collection) Values() []any {
	vs := make([]any, 0, len(c.Entries))
	for _, e := range c.Entries {
		vs = append(vs, e.Value)
	}
	return vs
}

// IsList reports whether the keys form the contiguous zero based index range 0..n-1.
// An empty collection is list shaped.
func (c Collection) IsList() bool {
	if !c.keyed {
		return true
	}
	for i, e := range c.Entries {
		if !isIndex(e.Key, i) {
			return false
		}
	}
	return true
}

// IsMap reports whether the collection is a non-empty associative container that is not list shaped.
func (c Collection) IsMap() bool {
	return 0 < c.Len() && !c.IsList()
}

// Is reports whether v can be materialised.
func Is(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Chan:
		return rv.Type().ChanDir()&reflect.RecvDir != 0
	case reflect.Func:
		return !rv.IsNil() && isSeq(rv.Type())
	case reflect.Pointer:
		// a nil pointer resolves its methods but can't be pulled from
		if rv.IsNil() {
			return false
		}
	}
	_, _, ok := pullMethods(rv)
	return ok
}

// Materialize collects every entry of v.
// The second result is false when v is not iterable.
func Materialize(v any) (Collection, bool) {
	if !Is(v) {
		return Collection{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return fromSlice(rv), true
	case reflect.Map:
		return fromMap(rv), true
	case reflect.Chan:
		return fromChan(rv), true
	case reflect.Func:
		return fromSeq(rv), true
	}
	return fromPull(rv), true
}

func fromSlice(rv reflect.Value) Collection {
	var c Collection
	for i := 0; i < rv.Len(); i++ {
		c.Entries = append(c.Entries, Entry{Key: i, Value: rv.Index(i).Interface()})
	}
	return c
}

func fromMap(rv reflect.Value) Collection {
	c := Collection{keyed: true}
	iter := rv.MapRange()
	for iter.Next() {
		c.Entries = append(c.Entries, Entry{Key: iter.Key().Interface(), Value: iter.Value().Interface()})
	}
	slices.SortStableFunc(c.Entries, func(a, b Entry) int {
		return compareKeys(a.Key, b.Key)
	})
	return c
}

// fromChan drains the channel until it is closed.
func fromChan(rv reflect.Value) Collection {
	var c Collection
	if rv.IsNil() {
		return c
	}
	for i := 0; ; i++ {
		v, ok := rv.Recv()
		if !ok {
			break
		}
		c.Entries = append(c.Entries, Entry{Key: i, Value: v.Interface()})
	}
	return c
}

func isSeq(typ reflect.Type) bool {
	if typ.NumIn() != 1 || typ.NumOut() != 0 {
		return false
	}
	yield := typ.In(0)
	if yield.Kind() != reflect.Func || yield.NumOut() != 1 || yield.Out(0).Kind() != reflect.Bool {
		return false
	}
	return yield.NumIn() == 1 || yield.NumIn() == 2
}

func fromSeq(rv reflect.Value) Collection {
	var (
		c     Collection
		yield = rv.Type().In(0)
		cont  = reflect.ValueOf(true).Convert(yield.Out(0))
	)
	c.keyed = yield.NumIn() == 2
	fn := reflect.MakeFunc(yield, func(args []reflect.Value) []reflect.Value {
		switch len(args) {
		case 1:
			c.Entries = append(c.Entries, Entry{Key: len(c.Entries), Value: args[0].Interface()})
		case 2:
			c.Entries = append(c.Entries, Entry{Key: args[0].Interface(), Value: args[1].Interface()})
		}
		return []reflect.Value{cont}
	})
	rv.Call([]reflect.Value{fn})
	return c
}

func pullMethods(rv reflect.Value) (next, value reflect.Value, ok bool) {
	next = rv.MethodByName("Next")
	value = rv.MethodByName("Value")
	if !next.IsValid() || !value.IsValid() {
		return next, value, false
	}
	nt, vt := next.Type(), value.Type()
	if nt.NumIn() != 0 || nt.NumOut() != 1 || nt.Out(0).Kind() != reflect.Bool {
		return next, value, false
	}
	if vt.NumIn() != 0 || vt.NumOut() != 1 {
		return next, value, false
	}
	return next, value, true
}

func fromPull(rv reflect.Value) Collection {
	var c Collection
	next, value, _ := pullMethods(rv)
	for i := 0; next.Call(nil)[0].Bool(); i++ {
		c.Entries = append(c.Entries, Entry{Key: i, Value: value.Call(nil)[0].Interface()})
	}
	if closer, ok := rv.Interface().(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	return c
}

func isIndex(key any, i int) bool {
	if key == nil {
		return false
	}
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == int64(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == uint64(i)
	default:
		return false
	}
}

func compareKeys(a, b any) int {
	if na, ok := equality.Number(a); ok {
		if nb, ok := equality.Number(b); ok {
			if c, ok := na.Compare(nb); ok {
				return c
			}
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() == reflect.String && rb.Kind() == reflect.String {
		return strings.Compare(ra.String(), rb.String())
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
