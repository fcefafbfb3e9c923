package tokenizer

import (
	"iter"
	"unicode/utf8"
)

// Scanner produces maximal category runs from a string, one per call to Next.
// A Scanner is not safe for concurrent use; restart by creating a new one.
type Scanner struct {
	text string
	pos  int

	// category and width of the rune at pos, valid when peeked is set
	next   Category
	width  int
	peeked bool
}

// NewScanner returns a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next run, or false once the input is exhausted.
func (s *Scanner) Next() (Run, bool) {
	if s.pos >= len(s.text) {
		return Run{}, false
	}

	start := s.pos
	category, width := s.peek()
	s.advance(width)

	for s.pos < len(s.text) {
		c, w := s.peek()
		if c != category {
			break
		}
		s.advance(w)
	}

	return Run{
		Category: category,
		Text:     s.text[start:s.pos],
		Start:    start,
		End:      s.pos,
	}, true
}

// peek classifies the rune at pos without consuming it. Invalid bytes decode
// as utf8.RuneError with width 1, so every byte lands in some run.
func (s *Scanner) peek() (Category, int) {
	if !s.peeked {
		r, w := utf8.DecodeRuneInString(s.text[s.pos:])
		s.next, s.width, s.peeked = Classify(r), w, true
	}
	return s.next, s.width
}

func (s *Scanner) advance(width int) {
	s.pos += width
	s.peeked = false
}

// ScanRuns returns the runs of text as a lazy sequence. Each iteration
// rescans from the start.
func ScanRuns(text string) iter.Seq[Run] {
	return func(yield func(Run) bool) {
		s := NewScanner(text)
		for {
			run, ok := s.Next()
			if !ok || !yield(run) {
				return
			}
		}
	}
}
