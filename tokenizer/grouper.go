package tokenizer

import (
	"iter"
	"slices"
)

// SeparatorSet is an immutable set of categories that end a word token and
// stand alone as their own token. The zero value contains nothing.
type SeparatorSet struct {
	members map[Category]struct{}
}

// defaultSeparators mixes coarsened codes with raw subcodes. Once the scanner
// has coarsened a run only P, Z, Cc and Cf can occur; the raw entries apply
// when the grouper is fed uncoarsened categories.
var defaultSeparators = NewSeparatorSet(
	Punctuation, Separator,
	"Zs", "Po", "Sc", "Ps", "Pe", "Pc", "Sm", "Pd",
	"Cc", "C", "Cf",
)

// DefaultSeparators returns the standard separator set.
func DefaultSeparators() SeparatorSet {
	return defaultSeparators
}

// NewSeparatorSet returns a set holding cats.
func NewSeparatorSet(cats ...Category) SeparatorSet {
	members := make(map[Category]struct{}, len(cats))
	for _, c := range cats {
		members[c] = struct{}{}
	}
	return SeparatorSet{members: members}
}

// Contains reports whether c separates words.
func (s SeparatorSet) Contains(c Category) bool {
	_, ok := s.members[c]
	return ok
}

// Categories returns the members in sorted order.
func (s SeparatorSet) Categories() []Category {
	cats := make([]Category, 0, len(s.members))
	for c := range s.members {
		cats = append(cats, c)
	}
	slices.Sort(cats)
	return cats
}

// Len returns the number of members.
func (s SeparatorSet) Len() int {
	return len(s.members)
}

// GroupTokens partitions runs into tokens using s.
func (s SeparatorSet) GroupTokens(runs iter.Seq[Run]) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		next, stop := iter.Pull(runs)
		defer stop()

		g := NewGrouper(RunSourceFunc(next), s)
		for {
			tok, ok := g.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// GroupTokens partitions runs into tokens using DefaultSeparators.
func GroupTokens(runs iter.Seq[Run]) iter.Seq[Token] {
	return defaultSeparators.GroupTokens(runs)
}

// RunSource yields runs until it returns false.
type RunSource interface {
	Next() (Run, bool)
}

// RunSourceFunc adapts a function, such as the next func from iter.Pull, to
// a RunSource.
type RunSourceFunc func() (Run, bool)

// Next calls f.
func (f RunSourceFunc) Next() (Run, bool) { return f() }

// Grouper turns a RunSource into tokens, one per call to Next.
type Grouper struct {
	src        RunSource
	separators SeparatorSet

	word    []Run  // runs of the word token in progress
	pending *Token // separator held back while the word before it is flushed
}

// NewGrouper returns a Grouper reading from src.
func NewGrouper(src RunSource, separators SeparatorSet) *Grouper {
	return &Grouper{src: src, separators: separators}
}

// Next returns the next token, or false once src is exhausted and nothing
// is buffered.
func (g *Grouper) Next() (Token, bool) {
	if g.pending != nil {
		tok := *g.pending
		g.pending = nil
		return tok, true
	}

	for {
		run, ok := g.src.Next()
		if !ok {
			if len(g.word) > 0 {
				return g.flush(), true
			}
			return Token{}, false
		}

		if !g.separators.Contains(run.Category) {
			g.word = append(g.word, run)
			continue
		}

		sep := Token{Runs: []Run{run}, Separator: true}
		if len(g.word) == 0 {
			return sep, true
		}
		g.pending = &sep
		return g.flush(), true
	}
}

func (g *Grouper) flush() Token {
	tok := Token{Runs: g.word}
	g.word = nil
	return tok
}
