package lines

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
)

// Options is the resolved rendering configuration of a [Builder].
type Options struct {
	Indent               string `yaml:"indent"`
	IndentEmpty          bool   `yaml:"indentEmpty"`
	SkipFirstLevelIndent bool   `yaml:"skipFirstLevelIndent"`
	SkipEmpty            bool   `yaml:"skipEmpty"`
	TrimLeft             bool   `yaml:"trimLeft"`
	TrimRight            bool   `yaml:"trimRight"`
	EOL                  string `yaml:"eol"`
}

// BuiltinOptions returns the options every provider starts from.
func BuiltinOptions() Options {
	return Options{
		TrimLeft:  true,
		TrimRight: true,
	}
}

// Option overrides a single field of [Options].
type Option func(*Options)

// WithIndent sets a literal indent prefix.
func WithIndent(indent string) Option {
	return func(o *Options) { o.Indent = indent }
}

// WithIndentSpaces sets the indent to n spaces. Negative n means no indent.
func WithIndentSpaces(n int) Option {
	return func(o *Options) { o.Indent = spaces(n) }
}

// WithIndentEmpty controls whether blank lines receive the indent prefix.
func WithIndentEmpty(v bool) Option {
	return func(o *Options) { o.IndentEmpty = v }
}

// WithSkipFirstLevelIndent omits the indent on the builder's own text lines.
// Nested builders are still indented.
func WithSkipFirstLevelIndent(v bool) Option {
	return func(o *Options) { o.SkipFirstLevelIndent = v }
}

// WithSkipEmpty drops blank lines from the output.
func WithSkipEmpty(v bool) Option {
	return func(o *Options) { o.SkipEmpty = v }
}

// WithTrimLeft controls trimming of leading whitespace from input lines.
func WithTrimLeft(v bool) Option {
	return func(o *Options) { o.TrimLeft = v }
}

// WithTrimRight controls trimming of trailing whitespace from input lines.
func WithTrimRight(v bool) Option {
	return func(o *Options) { o.TrimRight = v }
}

// WithTrim sets both TrimLeft and TrimRight.
func WithTrim(v bool) Option {
	return func(o *Options) {
		o.TrimLeft = v
		o.TrimRight = v
	}
}

// WithEOL sets an explicit line terminator. An empty string selects the
// native one.
func WithEOL(eol string) Option {
	return func(o *Options) { o.EOL = eol }
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func (o Options) with(opts []Option) Options {
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EOLFunc reports the platform's conventional line terminator.
type EOLFunc func() string

// NativeEOL returns "\r\n" on Windows and "\n" everywhere else.
func NativeEOL() string {
	return eolFor(runtime.GOOS)
}

func eolFor(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Defaults holds the baseline options merged under every per-builder
// override. The record is replaced wholesale on every change, so readers
// always observe a complete set of options.
type Defaults struct {
	opts      atomic.Pointer[Options]
	nativeEOL EOLFunc
}

// NewDefaults returns a provider initialised with [BuiltinOptions]. A nil
// nativeEOL selects [NativeEOL].
func NewDefaults(nativeEOL EOLFunc) *Defaults {
	if nativeEOL == nil {
		nativeEOL = NativeEOL
	}
	d := &Defaults{nativeEOL: nativeEOL}
	d.Reset()
	return d
}

// Get returns the current default options.
func (d *Defaults) Get() Options {
	return *d.opts.Load()
}

// Set merges opts over the current defaults and returns the result.
func (d *Defaults) Set(opts ...Option) (Options, error) {
	if len(opts) == 0 {
		return d.Get(), fmt.Errorf("%w: options must be set", ErrInvalidArgument)
	}
	for i, opt := range opts {
		if opt == nil {
			return d.Get(), fmt.Errorf("%w: option %d is nil", ErrInvalidArgument, i)
		}
	}
	for {
		prev := d.opts.Load()
		next := prev.with(opts)
		if d.opts.CompareAndSwap(prev, &next) {
			tracef("defaults set: %+v -> %+v", *prev, next)
			return next, nil
		}
	}
}

// Reset restores [BuiltinOptions] and returns them.
func (d *Defaults) Reset() Options {
	opts := BuiltinOptions()
	d.opts.Store(&opts)
	tracef("defaults reset: %+v", opts)
	return opts
}

// Build creates a builder whose options start from this provider's
// defaults. See [Build] for the accepted arguments.
func (d *Defaults) Build(args ...any) *Builder {
	overrides, items := splitArgs(args)
	opts := d.Get().with(overrides)
	b := &Builder{opts: opts, nativeEOL: d.nativeEOL}
	b.items = b.normalize(items)
	if len(b.items) == 0 {
		b.items = []Item{Text("")}
	}
	tracef("build: options=%+v items=%d", b.opts, len(b.items))
	return b
}

var std = NewDefaults(nil)

// Std returns the package-level provider used by [Build],
// [SetDefaultOptions] and [ResetDefaultOptions].
func Std() *Defaults { return std }

// DefaultOptions returns the current package-level defaults.
func DefaultOptions() Options { return std.Get() }

// SetDefaultOptions merges opts into the package-level defaults. It fails
// with [ErrInvalidArgument] when no option or a nil option is given.
func SetDefaultOptions(opts ...Option) (Options, error) { return std.Set(opts...) }

// ResetDefaultOptions restores the package-level defaults to [BuiltinOptions].
func ResetDefaultOptions() Options { return std.Reset() }
