package bench

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	wordrun "github.com/jamesainslie/go-wordrun"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Profile is a named separator set.
type Profile struct {
	Name       string
	Separators []tokenizer.Category
}

// Profiles returns the built-in separator profiles. "default" and "coarse"
// differ only in raw subcodes the scanner never emits.
func Profiles() []Profile {
	return []Profile{
		{Name: "default", Separators: tokenizer.DefaultSeparators().Categories()},
		{Name: "coarse", Separators: []tokenizer.Category{
			tokenizer.Punctuation, tokenizer.Separator, "Cc", "Cf", "C",
		}},
		{Name: "whitespace", Separators: []tokenizer.Category{
			tokenizer.Separator, "Cc",
		}},
	}
}

// EvaluateDocument compares the tokenizer's boundaries on doc with its
// Unicode word boundaries.
func EvaluateDocument(ctx context.Context, tok *wordrun.Tokenizer, doc *Document, cfg Config) (Metrics, error) {
	if err := ctx.Err(); err != nil {
		return Metrics{}, err
	}
	predicted := Boundaries(tok.Tokens(doc.Text))
	return Evaluate(predicted, ReferenceBoundaries(doc.Text), cfg), nil
}

// EvaluateCorpus evaluates every document in parallel and returns the
// aggregate metrics.
func EvaluateCorpus(ctx context.Context, tok *wordrun.Tokenizer, docs []*Document, cfg Config) (Metrics, error) {
	results := make([]Metrics, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, doc := range docs {
		g.Go(func() error {
			m, err := EvaluateDocument(ctx, tok, doc, cfg)
			if err != nil {
				return fmt.Errorf("evaluating %s: %w", doc.ID, err)
			}
			results[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Metrics{}, err
	}

	total := Score(0, 0, 0, cfg)
	for _, m := range results {
		total = total.Add(m, cfg)
	}
	return total, nil
}

// SweepResult holds metrics for one profile.
type SweepResult struct {
	Profile Profile
	Metrics Metrics
}

// Sweep evaluates each profile and returns results sorted by weighted score.
func Sweep(ctx context.Context, docs []*Document, profiles []Profile, cfg Config, opts ...wordrun.Option) ([]SweepResult, error) {
	var results []SweepResult

	for _, p := range profiles {
		tok, err := wordrun.New(append(slices.Clip(opts), wordrun.WithSeparators(p.Separators...))...)
		if err != nil {
			return nil, err
		}

		m, err := EvaluateCorpus(ctx, tok, docs, cfg)
		_ = tok.Close()
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", p.Name, err)
		}

		results = append(results, SweepResult{Profile: p, Metrics: m})
	}

	// Sort by weighted score descending
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results, nil
}
