// Package lines assembles multi-line text from ordered, optionally nested
// lists of lines.
//
// A [Builder] holds text lines, blank markers and other builders. Rendering
// flattens the tree into one string, prefixing each level with its indent
// and joining the result with the configured line terminator. Code
// generators and configuration emitters can compose output from small
// pieces without tracking indentation by hand:
//
//	body := lines.Build(lines.WithIndent("\t"), "return nil")
//	fn := lines.Build("func f() error {", body, "}")
//	fmt.Println(fn)
//
// # Lines
//
// [Build], [Builder.Append] and [Builder.Prepend] accept:
//
//   - string — split on line breaks; every segment becomes a text line
//   - *Builder — nested as is
//   - nil — a blank line
//   - []string and [Item] values
//
// Other values are ignored. Input lines are trimmed on both sides unless
// [WithTrimLeft] or [WithTrimRight] turn it off.
//
// # Options
//
// A builder's options are the current defaults merged with the overrides
// passed as the first argument of [Build]:
//
//   - [WithIndent], [WithIndentSpaces] — prefix for each line at this level
//   - [WithIndentEmpty] — indent blank lines too
//   - [WithSkipFirstLevelIndent] — leave the builder's own lines unindented
//   - [WithSkipEmpty] — drop blank lines
//   - [WithTrimLeft], [WithTrimRight], [WithTrim] — input trimming
//   - [WithEOL] — line terminator; empty selects [NativeEOL]
//
// Overrides can also come from YAML through [ParseConfig]. The package-level
// defaults are changed with [SetDefaultOptions] and [ResetDefaultOptions];
// use [NewDefaults] for an independent provider.
//
// # Filter and Map
//
// [Builder.Filter] and [Builder.Map] rewrite a builder and its nested
// builders in place:
//
//	b.Filter("^import", true) // drop lines starting with "import"
//	b.Map(func(line string, i, level int) string { return strings.ToUpper(line) })
//
// # Errors
//
//   - [ErrInvalidArgument] — missing or unusable matcher, mapper or options
//   - [ErrNotFunction] — a mapper that is not a function
//
// # Tracing
//
// [SetTrace] sends a debug trace of builder operations to a writer.
package lines
