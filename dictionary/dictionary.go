// Package dictionary holds the word sets that token streams are matched
// against.
//
// Two file formats are read. A ".txt" file lists one word per line; blank
// lines and lines starting with "#" are ignored. Any other file is a
// protobuf-encoded message:
//
//	message Dictionary {
//	  string name = 1;
//	  repeated string word = 2;
//	}
package dictionary

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"google.golang.org/protobuf/encoding/protowire"
)

const (
	fieldName protowire.Number = 1
	fieldWord protowire.Number = 2
)

// ErrMalformed is returned when a binary dictionary cannot be decoded.
var ErrMalformed = errors.New("dictionary: malformed data")

// Dictionary is an immutable set of words. It is safe for concurrent use.
type Dictionary struct {
	name  string
	words map[string]struct{}
}

// New builds a dictionary from words. Empty strings are dropped.
func New(name string, words ...string) *Dictionary {
	d := &Dictionary{
		name:  name,
		words: make(map[string]struct{}, len(words)),
	}
	for _, w := range words {
		if w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// Name returns the dictionary name.
func (d *Dictionary) Name() string {
	if d == nil {
		return ""
	}
	return d.name
}

// Contains reports whether word is in the dictionary. A nil dictionary
// contains nothing.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[word]
	return ok
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}

// Words returns all words in sorted order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	words := make([]string, 0, len(d.words))
	for w := range d.words {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Load reads a dictionary file, choosing the format by extension. The name
// defaults to the file's base name when the file does not carry one.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}

	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		words, err := parseWordList(data)
		if err != nil {
			return nil, err
		}
		return New(stem, words...), nil
	}

	d, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	if d.name == "" {
		d.name = stem
	}
	return d, nil
}

func parseWordList(data []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan word list: %w", err)
	}
	return words, nil
}

// Marshal encodes d in the binary format. Words are written in sorted order
// so the output is stable.
func (d *Dictionary) Marshal() []byte {
	var b []byte
	if d.name != "" {
		b = protowire.AppendTag(b, fieldName, protowire.BytesType)
		b = protowire.AppendString(b, d.name)
	}
	for _, w := range d.Words() {
		b = protowire.AppendTag(b, fieldWord, protowire.BytesType)
		b = protowire.AppendString(b, w)
	}
	return b
}

// Unmarshal decodes the binary format. Unknown fields are skipped.
func Unmarshal(data []byte) (*Dictionary, error) {
	var (
		name  string
		words []string
	)

	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: name: %w", ErrMalformed, protowire.ParseError(n))
			}
			name = v
			data = data[n:]
		case num == fieldWord && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("%w: word %d: %w", ErrMalformed, len(words), protowire.ParseError(n))
			}
			words = append(words, v)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("%w: field %d: %w", ErrMalformed, num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}

	return New(name, words...), nil
}

// Write stores d at path in the binary format.
func (d *Dictionary) Write(path string) error {
	if err := os.WriteFile(path, d.Marshal(), 0o644); err != nil {
		return fmt.Errorf("writing dictionary file: %w", err)
	}
	return nil
}
