package stringify

import "strings"

// Brackets selects the bracket pair enclosing a rendered Builder.
type Brackets int

const (
	// Round renders as Name(...). The default.
	Round Brackets = iota
	// Curly renders as Name{...}.
	Curly
	// Square renders as Name[...].
	Square
)

func (b Brackets) pair() (string, string) {
	switch b {
	case Curly:
		return "{", "}"
	case Square:
		return "[", "]"
	default:
		return "(", ")"
	}
}

type entry struct {
	key   string
	named bool
	value any
}

// Builder accumulates an ordered sequence of named and unnamed values and
// renders them into a single canonical string.
//
// A Builder is a short-lived, stack-local object: build it, configure it,
// render it within one call. It is not safe for concurrent mutation.
// Rendering never mutates the builder, so String may be called any number
// of times and keeps returning the same text until the state changes.
//
// Expected usage:
//
//	stringify.New("Endpoint").
//		Add("host", host).
//		Add("port", port).
//		OmitNilValues(true).
//		String()
type Builder struct {
	name string

	// Entries form a deque: prepends holds AddFirst entries in call
	// order and is rendered newest-first, ahead of appends. Both ends
	// stay O(1).
	prepends []entry
	appends  []entry

	brackets Brackets
	omitNil  bool
	kvSep    string
	entrySep string
}

// New creates an empty Builder rendering under the given display name,
// with round brackets, "=" between names and values, ", " between entries
// and nil values included.
func New(name string) *Builder {
	return &Builder{name: name, kvSep: "=", entrySep: ", "}
}

// Add appends a named entry and returns the builder for chaining.
func (b *Builder) Add(key string, value any) *Builder {
	b.appends = append(b.appends, entry{key: key, named: true, value: value})
	return b
}

// AddValue appends an unnamed entry and returns the builder for chaining.
func (b *Builder) AddValue(value any) *Builder {
	b.appends = append(b.appends, entry{value: value})
	return b
}

// AddFirst prepends a named entry: each call becomes the new head, so the
// last AddFirst call renders first.
func (b *Builder) AddFirst(key string, value any) *Builder {
	b.prepends = append(b.prepends, entry{key: key, named: true, value: value})
	return b
}

// AddFirstValue prepends an unnamed entry.
func (b *Builder) AddFirstValue(value any) *Builder {
	b.prepends = append(b.prepends, entry{value: value})
	return b
}

// OmitNilValues controls whether nil-valued entries are dropped from the
// rendered text. Later calls override earlier ones.
func (b *Builder) OmitNilValues(omit bool) *Builder {
	b.omitNil = omit
	return b
}

// WithBrackets selects the enclosing bracket pair. Entry content and order
// are unaffected.
func (b *Builder) WithBrackets(style Brackets) *Builder {
	b.brackets = style
	return b
}

// EntrySeparator replaces the text emitted between entries.
func (b *Builder) EntrySeparator(sep string) *Builder {
	b.entrySep = sep
	return b
}

// NameValueSeparator replaces the text emitted between a key and its value.
func (b *Builder) NameValueSeparator(sep string) *Builder {
	b.kvSep = sep
	return b
}

// String renders the builder: the display name, the open bracket, the
// entries head to tail joined by the entry separator, the close bracket.
//
// A value whose canonical text contains a comma or a space is wrapped in
// single quotes so it cannot be confused with the default entry separator.
// Omitted entries contribute nothing, including no stray separator; a
// builder whose entries are all omitted renders like an empty one.
func (b *Builder) String() string {
	parts := make([]string, 0, len(b.prepends)+len(b.appends))
	emit := func(e entry) {
		if b.omitNil && isNil(e.value) {
			return
		}
		text := Text(e.value)
		if strings.ContainsAny(text, ", ") {
			text = "'" + text + "'"
		}
		if e.named {
			text = e.key + b.kvSep + text
		}
		parts = append(parts, text)
	}
	for i := len(b.prepends) - 1; i >= 0; i-- {
		emit(b.prepends[i])
	}
	for _, e := range b.appends {
		emit(e)
	}

	open, closing := b.brackets.pair()
	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteString(open)
	sb.WriteString(strings.Join(parts, b.entrySep))
	sb.WriteString(closing)
	return sb.String()
}
