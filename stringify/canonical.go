package stringify

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Text converts a value to its canonical display text.
//
// nil renders as "null". Slices and arrays render bracketed and
// comma-joined ("[a, b, c]"), maps render as "{k=v, k=v}" with entries
// ordered by key text so the output is deterministic despite Go's
// randomized map iteration. Both forms recurse through Text, so nested
// collections keep the same joining convention. Everything else goes
// through fmt.Sprint.
//
// A value providing its own String or Error text keeps it, even when its
// underlying kind is a collection (a uuid is an array of bytes, but its
// display text is the uuid).
//
// Text is used by Builder for entry values and is usable standalone.
func Text(v any) string {
	if isNil(v) {
		return "null"
	}
	rv := reflect.ValueOf(v)
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	case error:
		return s.Error()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = Text(rv.Index(i).Interface())
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case reflect.Map:
		type pair struct{ key, text string }
		pairs := make([]pair, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := Text(iter.Key().Interface())
			pairs = append(pairs, pair{key: k, text: k + "=" + Text(iter.Value().Interface())})
		}
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })
		texts := make([]string, len(pairs))
		for i, p := range pairs {
			texts[i] = p.text
		}
		return "{" + strings.Join(texts, ", ") + "}"
	default:
		return fmt.Sprint(v)
	}
}

// isNil reports whether v is nil, including a typed nil pointer boxed in
// an interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
