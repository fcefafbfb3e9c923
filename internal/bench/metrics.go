package bench

import (
	"iter"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Config holds evaluation parameters.
type Config struct {
	Tolerance       int // byte match tolerance
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Tolerance:       0,
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results.
type Metrics struct {
	TruePositives  int
	FalsePositives int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
	WeightedScore  float64
}

// Add returns the sum of the counts in m and o, with scores recomputed.
func (m Metrics) Add(o Metrics, cfg Config) Metrics {
	return Score(m.TruePositives+o.TruePositives, m.FalsePositives+o.FalsePositives, m.FalseNegatives+o.FalseNegatives, cfg)
}

// Score derives precision, recall, F1 and the weighted score from counts.
func Score(tp, fp, fn int, cfg Config) Metrics {
	m := Metrics{
		TruePositives:  tp,
		FalsePositives: fp,
		FalseNegatives: fn,
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	if wp, wr := cfg.PrecisionWeight, cfg.RecallWeight; wp+wr > 0 {
		m.WeightedScore = (wp*m.Precision + wr*m.Recall) / (wp + wr)
	}
	return m
}

// Evaluate compares predicted boundaries against reference boundaries.
// Uses greedy left-to-right matching within tolerance; each reference
// boundary matches at most once.
func Evaluate(predicted, truth []int, cfg Config) Metrics {
	matched := make([]bool, len(truth))
	tp := 0

	for _, p := range predicted {
		for i, t := range truth {
			if matched[i] {
				continue
			}
			if abs(p-t) <= cfg.Tolerance {
				matched[i] = true
				tp++
				break
			}
		}
	}

	return Score(tp, len(predicted)-tp, len(truth)-tp, cfg)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Boundaries returns the end offset of every token, in order.
func Boundaries(tokens iter.Seq[tokenizer.Token]) []int {
	var ends []int
	for tok := range tokens {
		ends = append(ends, tok.End())
	}
	return ends
}

// ReferenceBoundaries returns the end offsets of the Unicode (UAX #29) word
// segments of text.
func ReferenceBoundaries(text string) []int {
	var ends []int
	offset := 0
	segments := words.FromString(text)
	for segments.Next() {
		offset += len(segments.Value())
		ends = append(ends, offset)
	}
	return ends
}
