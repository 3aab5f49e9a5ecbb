package lines

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Indent is an indent prefix decoded from YAML. A string is used verbatim;
// an integer means that many spaces, with negative values meaning none.
type Indent string

// UnmarshalYAML implements yaml.Unmarshaler.
func (in *Indent) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: indent must be a string or an integer", ErrInvalidArgument)
	}
	switch node.ShortTag() {
	case "!!int":
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("%w: indent: %s", ErrInvalidArgument, err)
		}
		*in = Indent(spaces(n))
	case "!!str":
		*in = Indent(node.Value)
	default:
		return fmt.Errorf("%w: indent must be a string or an integer, got %s", ErrInvalidArgument, node.ShortTag())
	}
	return nil
}

// Config is a partial set of option overrides, typically loaded from YAML.
// Unset fields leave the underlying defaults alone.
type Config struct {
	Indent               *Indent `yaml:"indent,omitempty"`
	IndentEmpty          *bool   `yaml:"indentEmpty,omitempty"`
	SkipFirstLevelIndent *bool   `yaml:"skipFirstLevelIndent,omitempty"`
	SkipEmpty            *bool   `yaml:"skipEmpty,omitempty"`
	TrimLeft             *bool   `yaml:"trimLeft,omitempty"`
	TrimRight            *bool   `yaml:"trimRight,omitempty"`
	EOL                  *string `yaml:"eol,omitempty"`
}

// ParseConfig decodes a YAML document into a Config. Unknown keys and
// malformed values yield an error wrapping [ErrInvalidArgument]. An empty
// document is a valid, empty Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		if errors.Is(err, ErrInvalidArgument) {
			return Config{}, err
		}
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidArgument, err)
	}
	return c, nil
}

// Options returns the overrides set in c.
func (c Config) Options() []Option {
	var opts []Option
	if c.Indent != nil {
		opts = append(opts, WithIndent(string(*c.Indent)))
	}
	if c.IndentEmpty != nil {
		opts = append(opts, WithIndentEmpty(*c.IndentEmpty))
	}
	if c.SkipFirstLevelIndent != nil {
		opts = append(opts, WithSkipFirstLevelIndent(*c.SkipFirstLevelIndent))
	}
	if c.SkipEmpty != nil {
		opts = append(opts, WithSkipEmpty(*c.SkipEmpty))
	}
	if c.TrimLeft != nil {
		opts = append(opts, WithTrimLeft(*c.TrimLeft))
	}
	if c.TrimRight != nil {
		opts = append(opts, WithTrimRight(*c.TrimRight))
	}
	if c.EOL != nil {
		opts = append(opts, WithEOL(*c.EOL))
	}
	return opts
}
