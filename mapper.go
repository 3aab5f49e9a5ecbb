package lines

import "fmt"

// Mapper returns the replacement for the line at index i of a builder
// nested level deep. The root builder is level 0.
type Mapper func(line string, i, level int) string

// Map replaces, in place, every text line of b and its nested builders with
// the mapper's result. Blank markers are left untouched. mapper may be a
// [Mapper] or a func(string, int, int) string.
//
// A missing mapper yields an error wrapping [ErrInvalidArgument]; a value
// that is not a function additionally wraps [ErrNotFunction].
func (b *Builder) Map(mapper any) error {
	var fn Mapper
	switch m := mapper.(type) {
	case nil:
		return fmt.Errorf("%w: mapper must be set", ErrInvalidArgument)
	case Mapper:
		fn = m
	case func(string, int, int) string:
		fn = m
	default:
		return fmt.Errorf("%w: %w: mapper is %T", ErrInvalidArgument, ErrNotFunction, mapper)
	}
	if fn == nil {
		return fmt.Errorf("%w: mapper must be set", ErrInvalidArgument)
	}
	tracef("map: mapper=%T", mapper)
	b.mapLevel(fn, 0)
	return nil
}

func (b *Builder) mapLevel(fn Mapper, level int) {
	for i, it := range b.items {
		switch it.kind {
		case KindNested:
			it.nested.mapLevel(fn, level+1)
		case KindText:
			b.items[i].text = fn(it.text, i, level)
		}
	}
}
