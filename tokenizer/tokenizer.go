// Package tokenizer splits text into runs of same-category characters and
// groups those runs into word and separator tokens.
package tokenizer

import (
	"iter"
	"strings"
)

// Run is a maximal span of characters sharing one coarsened category.
type Run struct {
	Category Category
	Text     string
	Start    int // byte offset in original text
	End      int // byte offset in original text
}

// Token is a non-empty sequence of runs. A separator token holds exactly one
// run whose category is in the separator set; a word token holds none.
type Token struct {
	Runs      []Run
	Separator bool
}

// Text returns the concatenated text of the token's runs.
func (t Token) Text() string {
	if len(t.Runs) == 1 {
		return t.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range t.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Start returns the byte offset of the first run.
func (t Token) Start() int {
	if len(t.Runs) == 0 {
		return 0
	}
	return t.Runs[0].Start
}

// End returns the byte offset just past the last run.
func (t Token) End() int {
	if len(t.Runs) == 0 {
		return 0
	}
	return t.Runs[len(t.Runs)-1].End
}

// Categories returns the category of each run, in order.
func (t Token) Categories() []Category {
	cats := make([]Category, len(t.Runs))
	for i, r := range t.Runs {
		cats[i] = r.Category
	}
	return cats
}

// Tokenize scans text and groups the runs with DefaultSeparators.
func Tokenize(text string) iter.Seq[Token] {
	return DefaultSeparators().GroupTokens(ScanRuns(text))
}
