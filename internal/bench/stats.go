package bench

import (
	wordrun "github.com/jamesainslie/go-wordrun"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Stats counts what a tokenizer produced over a corpus.
type Stats struct {
	Documents  int
	Bytes      int
	Runs       int
	Words      int
	Separators int
	Categories map[tokenizer.Category]int // runs per category
}

// Collect tokenizes every document once and tallies the output.
func Collect(tok *wordrun.Tokenizer, docs []*Document) Stats {
	s := Stats{Categories: make(map[tokenizer.Category]int)}
	for _, doc := range docs {
		s.Documents++
		s.Bytes += len(doc.Text)
		for t := range tok.Tokens(doc.Text) {
			if t.Separator {
				s.Separators++
			} else {
				s.Words++
			}
			for _, r := range t.Runs {
				s.Runs++
				s.Categories[r.Category]++
			}
		}
	}
	return s
}

// RunsPerWord returns the mean number of runs in a word token.
func (s Stats) RunsPerWord() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Runs-s.Separators) / float64(s.Words)
}
