package lines

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFunction     = errors.New("not a function")
)

// Kind identifies the variant held by an [Item].
type Kind int

const (
	KindText   Kind = iota // a literal line
	KindEmpty              // a blank line marker
	KindNested             // a nested builder
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEmpty:
		return "empty"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// Item is one entry of a [Builder]: a text line, a blank marker or a nested
// builder.
type Item struct {
	kind   Kind
	text   string
	nested *Builder
}

// Text returns a text item.
func Text(s string) Item { return Item{kind: KindText, text: s} }

// Empty returns a blank line marker.
func Empty() Item { return Item{kind: KindEmpty} }

// Nested returns an item holding b. A nil b yields a blank marker.
func Nested(b *Builder) Item {
	if b == nil {
		return Empty()
	}
	return Item{kind: KindNested, nested: b}
}

// Kind returns the item variant.
func (it Item) Kind() Kind { return it.kind }

// Text returns the line of a text item and "" otherwise.
func (it Item) Text() string { return it.text }

// Nested returns the builder of a nested item and nil otherwise.
func (it Item) Nested() *Builder { return it.nested }

// blank reports whether the item renders as a blank line.
func (it Item) blank() bool {
	return it.kind == KindEmpty || (it.kind == KindText && it.text == "")
}

// Builder is an ordered, mutable list of lines that renders into a single
// string. Builders may be nested; each level applies its own indent.
type Builder struct {
	opts      Options
	items     []Item
	nativeEOL EOLFunc
}

// Build creates a builder using the package-level defaults.
//
// If the first argument is an [Option], []Option, [Config] or *Config it is
// applied over the defaults. The remaining arguments are lines:
//
//   - string: split on line breaks, each segment trimmed per options
//   - *Builder: nested as is, not copied
//   - nil: a blank line
//   - []string: each element handled as a string argument
//   - [Item]: text items are handled like strings, others stored as is
//
// Arguments of any other type are ignored. Without lines the builder holds
// a single empty line.
func Build(args ...any) *Builder {
	return std.Build(args...)
}

func splitArgs(args []any) ([]Option, []any) {
	if len(args) == 0 {
		return nil, nil
	}
	switch v := args[0].(type) {
	case Option:
		if v != nil {
			return []Option{v}, args[1:]
		}
	case []Option:
		return compactOptions(v), args[1:]
	case Config:
		return v.Options(), args[1:]
	case *Config:
		if v != nil {
			return v.Options(), args[1:]
		}
	}
	return nil, args
}

func compactOptions(opts []Option) []Option {
	out := make([]Option, 0, len(opts))
	for _, opt := range opts {
		if opt != nil {
			out = append(out, opt)
		}
	}
	return out
}

// Len returns the number of items held directly by b.
func (b *Builder) Len() int { return len(b.items) }

// Items returns a copy of b's items.
func (b *Builder) Items() []Item {
	out := make([]Item, len(b.items))
	copy(out, b.items)
	return out
}

// Options returns the resolved options of b.
func (b *Builder) Options() Options { return b.opts }

// Append adds lines to the end of b. It accepts the same line arguments as
// [Build] and returns b.
func (b *Builder) Append(items ...any) *Builder {
	parsed := b.normalize(items)
	b.items = append(b.items, parsed...)
	tracef("append: +%d items, total %d", len(parsed), len(b.items))
	return b
}

// Prepend inserts lines at the beginning of b, keeping their order. It
// returns b.
func (b *Builder) Prepend(items ...any) *Builder {
	parsed := b.normalize(items)
	b.items = append(parsed, b.items...)
	tracef("prepend: +%d items, total %d", len(parsed), len(b.items))
	return b
}

func (b *Builder) normalize(raw []any) []Item {
	var out []Item
	for _, v := range raw {
		switch v := v.(type) {
		case nil:
			out = append(out, Empty())
		case string:
			out = b.appendText(out, v)
		case []string:
			for _, s := range v {
				out = b.appendText(out, s)
			}
		case *Builder:
			switch {
			case v == nil:
				out = append(out, Empty())
			case v.contains(b):
				tracef("normalize: dropping builder that would nest into itself")
			default:
				out = append(out, Nested(v))
			}
		case Item:
			switch {
			case v.kind == KindText:
				out = b.appendText(out, v.text)
			case v.kind == KindNested && v.nested.contains(b):
				tracef("normalize: dropping item that would nest into itself")
			default:
				out = append(out, v)
			}
		default:
			tracef("normalize: ignoring %T", v)
		}
	}
	return out
}

func (b *Builder) appendText(out []Item, s string) []Item {
	for _, line := range SplitLines(s) {
		if b.opts.TrimLeft {
			line = strings.TrimLeftFunc(line, unicode.IsSpace)
		}
		if b.opts.TrimRight {
			line = strings.TrimRightFunc(line, unicode.IsSpace)
		}
		out = append(out, Text(line))
	}
	return out
}

// contains reports whether target is b or is nested anywhere below b.
func (b *Builder) contains(target *Builder) bool {
	if b == target {
		return true
	}
	for _, it := range b.items {
		if it.kind == KindNested && it.nested.contains(target) {
			return true
		}
	}
	return false
}

var lineBreak = regexp.MustCompile(`\r?\n\r?`)

// SplitLines splits s on "\n", "\r\n" and "\n\r". A lone "\r" is not a
// line break.
func SplitLines(s string) []string {
	return lineBreak.Split(s, -1)
}
