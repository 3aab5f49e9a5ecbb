package lines

import (
	"fmt"
	"regexp"
)

// Matcher decides whether the line at index i of its builder is kept by
// [Builder.Filter].
type Matcher func(line string, i int) bool

// Filter removes, in place, every line that does not match. With reverse set
// it removes the matching lines instead.
//
// matcher may be a string (compiled as a case-insensitive regular
// expression), a *regexp.Regexp, a [Matcher] or a func(string, int) bool.
// Nested builders are filtered recursively and dropped once they are empty.
// Blank markers are matched as the empty string. The index passed to the
// matcher is the item's position within its own builder.
//
// Filter returns an error wrapping [ErrInvalidArgument] without modifying b
// when matcher is missing or unusable.
func (b *Builder) Filter(matcher any, reverse bool) error {
	match, err := compileMatcher(matcher)
	if err != nil {
		return err
	}
	tracef("filter: matcher=%T reverse=%t", matcher, reverse)
	b.filter(match, reverse)
	return nil
}

func compileMatcher(matcher any) (Matcher, error) {
	switch m := matcher.(type) {
	case nil:
		return nil, fmt.Errorf("%w: matcher must be set", ErrInvalidArgument)
	case string:
		if m == "" {
			return nil, fmt.Errorf("%w: matcher must be set", ErrInvalidArgument)
		}
		re, err := regexp.Compile("(?i)" + m)
		if err != nil {
			return nil, fmt.Errorf("%w: matcher pattern %q: %s", ErrInvalidArgument, m, err)
		}
		return matchRegexp(re), nil
	case *regexp.Regexp:
		if m == nil {
			return nil, fmt.Errorf("%w: matcher must be set", ErrInvalidArgument)
		}
		return matchRegexp(m), nil
	case Matcher:
		if m == nil {
			return nil, fmt.Errorf("%w: matcher must be set", ErrInvalidArgument)
		}
		return m, nil
	case func(string, int) bool:
		if m == nil {
			return nil, fmt.Errorf("%w: matcher must be set", ErrInvalidArgument)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("%w: unsupported matcher %T", ErrInvalidArgument, matcher)
	}
}

func matchRegexp(re *regexp.Regexp) Matcher {
	return func(line string, _ int) bool { return re.MatchString(line) }
}

func (b *Builder) filter(match Matcher, reverse bool) {
	kept := make([]Item, 0, len(b.items))
	for i, it := range b.items {
		switch it.kind {
		case KindNested:
			before := it.nested.Len()
			it.nested.filter(match, reverse)
			tracef("filter: nested %d -> %d", before, it.nested.Len())
			if it.nested.Len() > 0 {
				kept = append(kept, it)
			}
		case KindEmpty:
			if match("", i) != reverse {
				kept = append(kept, it)
			}
		default:
			if match(it.text, i) != reverse {
				kept = append(kept, it)
			}
		}
	}
	b.items = kept
}
