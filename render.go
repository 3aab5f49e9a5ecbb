package lines

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// String renders b and all nested builders, joined by the resolved line
// terminator. Rendering does not modify b.
func (b *Builder) String() string {
	return strings.Join(b.Lines(), b.eol())
}

// Lines returns the rendered output lines of b before they are joined.
func (b *Builder) Lines() []string {
	indent := b.opts.Indent
	firstIndent := indent
	if b.opts.SkipFirstLevelIndent {
		firstIndent = ""
	}

	out := make([]string, 0, len(b.items))
	for _, it := range b.items {
		switch {
		case it.kind == KindNested:
			for _, line := range SplitLines(it.nested.String()) {
				if line != "" {
					out = append(out, indent+line)
					continue
				}
				out = b.appendBlank(out)
			}
		case it.blank():
			out = b.appendBlank(out)
		default:
			out = append(out, firstIndent+it.text)
		}
	}
	tracef("render: %d items -> %d lines", len(b.items), len(out))
	return out
}

func (b *Builder) appendBlank(out []string) []string {
	switch {
	case b.opts.SkipEmpty:
		return out
	case b.opts.IndentEmpty:
		return append(out, b.opts.Indent)
	default:
		return append(out, "")
	}
}

// Width returns the display width, in terminal cells, of the widest
// rendered line.
func (b *Builder) Width() int {
	width := 0
	for _, line := range b.Lines() {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	return width
}

func (b *Builder) eol() string {
	if b.opts.EOL != "" {
		return b.opts.EOL
	}
	if b.nativeEOL != nil {
		return b.nativeEOL()
	}
	return NativeEOL()
}
