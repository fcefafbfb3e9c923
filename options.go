package wordrun

import (
	"log/slog"

	"github.com/jamesainslie/go-wordrun/dictionary"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Option configures a Tokenizer.
type Option func(*config)

type config struct {
	separators tokenizer.SeparatorSet
	dictionary *dictionary.Dictionary
	charset    string
	logger     *slog.Logger
}

func defaultConfig() config {
	return config{
		separators: tokenizer.DefaultSeparators(),
		charset:    "utf-8",
		logger:     slog.Default(),
	}
}

// WithSeparators replaces the separator categories (default:
// tokenizer.DefaultSeparators). Passing no categories makes every run part
// of a word.
func WithSeparators(cats ...tokenizer.Category) Option {
	return func(c *config) {
		c.separators = tokenizer.NewSeparatorSet(cats...)
	}
}

// WithDictionary sets the dictionary used by Match.
func WithDictionary(d *dictionary.Dictionary) Option {
	return func(c *config) {
		c.dictionary = d
	}
}

// WithCharset sets the encoding Decode expects (default: "utf-8"). Names are
// WHATWG labels such as "latin1", "shift_jis" or "utf-16le".
func WithCharset(name string) Option {
	return func(c *config) {
		if name != "" {
			c.charset = name
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
