package wordrun

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/jamesainslie/go-wordrun/dictionary"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Tokenizer splits text into category runs and tokens and matches word
// tokens against an optional dictionary. It is safe for concurrent use.
type Tokenizer struct {
	separators tokenizer.SeparatorSet
	dictionary *dictionary.Dictionary
	encoding   encoding.Encoding // nil for strict UTF-8
	logger     *slog.Logger
}

// Match is one token of a matched text.
type Match struct {
	Text  string
	Start int // byte offset in original text
	End   int // byte offset in original text
	Word  bool
	Known bool // word found in the dictionary
}

// New creates a Tokenizer.
func New(opts ...Option) (*Tokenizer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	enc, err := resolveCharset(cfg.charset)
	if err != nil {
		return nil, err
	}

	cfg.logger.Debug("tokenizer ready",
		slog.Int("separators", cfg.separators.Len()),
		slog.String("charset", cfg.charset),
		slog.String("dictionary", cfg.dictionary.Name()),
		slog.Int("words", cfg.dictionary.Len()),
	)

	return &Tokenizer{
		separators: cfg.separators,
		dictionary: cfg.dictionary,
		encoding:   enc,
		logger:     cfg.logger,
	}, nil
}

// Open creates a Tokenizer using the dictionary at dictPath. It overrides
// any WithDictionary option.
func Open(dictPath string, opts ...Option) (*Tokenizer, error) {
	dict, err := dictionary.Load(dictPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDictionaryNotFound, dictPath)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDictionary, err)
	}

	return New(append(slices.Clip(opts), WithDictionary(dict))...)
}

func resolveCharset(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, name)
	}
	canonical, err := htmlindex.Name(enc)
	if err == nil && canonical == "utf-8" {
		return nil, nil
	}
	return enc, nil
}

// Runs returns the category runs of text.
func (t *Tokenizer) Runs(text string) iter.Seq[tokenizer.Run] {
	return tokenizer.ScanRuns(text)
}

// Tokens returns the tokens of text, split with the configured separators.
func (t *Tokenizer) Tokens(text string) iter.Seq[tokenizer.Token] {
	return t.separators.GroupTokens(tokenizer.ScanRuns(text))
}

// Words returns the text of every word token, skipping separators.
func (t *Tokenizer) Words(text string) []string {
	var words []string
	for tok := range t.Tokens(text) {
		if !tok.Separator {
			words = append(words, tok.Text())
		}
	}
	return words
}

// Match returns every token of text, marking word tokens found in the
// dictionary. Without a dictionary nothing is Known.
func (t *Tokenizer) Match(text string) []Match {
	var matches []Match
	for tok := range t.Tokens(text) {
		m := Match{
			Text:  tok.Text(),
			Start: tok.Start(),
			End:   tok.End(),
			Word:  !tok.Separator,
		}
		m.Known = m.Word && t.dictionary.Contains(m.Text)
		matches = append(matches, m)
	}
	return matches
}

// Dictionary returns the dictionary in use, or nil.
func (t *Tokenizer) Dictionary() *dictionary.Dictionary {
	return t.dictionary
}

// Decode converts raw bytes to text using the configured charset. Invalid
// UTF-8 is reported rather than replaced.
func (t *Tokenizer) Decode(data []byte) (string, error) {
	if t.encoding == nil {
		if offset := invalidUTF8(data); offset >= 0 {
			t.logger.Debug("rejecting text", slog.Int("offset", offset))
			return "", fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidText, offset)
		}
		return string(data), nil
	}

	out, err := t.encoding.NewDecoder().Bytes(data)
	if err != nil {
		t.logger.Debug("decode failed", slog.Any("error", err))
		return "", fmt.Errorf("%w: %w", ErrInvalidText, err)
	}
	return string(out), nil
}

// invalidUTF8 returns the offset of the first invalid byte, or -1.
func invalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// Close releases resources held by the Tokenizer.
func (t *Tokenizer) Close() error {
	return nil
}
