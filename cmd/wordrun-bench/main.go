package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	wordrun "github.com/jamesainslie/go-wordrun"
	"github.com/jamesainslie/go-wordrun/internal/bench"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	corpusDir string
	profile   string
	tolerance int
	wp        float64
	wr        float64
	sweep     bool
	stats     bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var o options

	cmd := &cobra.Command{
		Use:           "wordrun-bench",
		Short:         "Compare token boundaries with Unicode word boundaries over a corpus",
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.corpusDir, "corpus", "testdata/corpus", "Directory containing corpus files")
	flags.StringVar(&o.profile, "profile", "default", "Separator profile: default, coarse or whitespace")
	flags.IntVar(&o.tolerance, "tolerance", 0, "Byte tolerance for boundary matching")
	flags.Float64Var(&o.wp, "wp", 1.0, "Precision weight")
	flags.Float64Var(&o.wr, "wr", 1.0, "Recall weight")
	flags.BoolVar(&o.sweep, "sweep", false, "Evaluate every profile")
	flags.BoolVar(&o.stats, "stats", false, "Print run and token counts")

	return cmd
}

func run(cmd *cobra.Command, o options) error {
	out := cmd.OutOrStdout()

	docs, err := bench.LoadCorpus(o.corpusDir)
	if err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}
	fmt.Fprintf(out, "Loaded %d documents from %s\n\n", len(docs), o.corpusDir)

	cfg := bench.Config{
		Tolerance:       o.tolerance,
		PrecisionWeight: o.wp,
		RecallWeight:    o.wr,
	}
	ctx := cmd.Context()

	if o.sweep {
		return runSweep(ctx, cmd, docs, cfg)
	}

	profiles := bench.Profiles()
	i := slices.IndexFunc(profiles, func(p bench.Profile) bool { return p.Name == o.profile })
	if i < 0 {
		return fmt.Errorf("unknown profile %q", o.profile)
	}

	tok, err := wordrun.New(wordrun.WithSeparators(profiles[i].Separators...))
	if err != nil {
		return err
	}
	defer func() { _ = tok.Close() }()

	m, err := bench.EvaluateCorpus(ctx, tok, docs, cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Fprintf(out, "(TP: %d, FP: %d, FN: %d)\n", m.TruePositives, m.FalsePositives, m.FalseNegatives)

	if o.stats {
		printStats(cmd, bench.Collect(tok, docs))
	}
	return nil
}

func runSweep(ctx context.Context, cmd *cobra.Command, docs []*bench.Document, cfg bench.Config) error {
	out := cmd.OutOrStdout()

	results, err := bench.Sweep(ctx, docs, bench.Profiles(), cfg)
	if err != nil {
		return fmt.Errorf("sweep: %w", err)
	}

	fmt.Fprintf(out, "Profile Sweep Results (wp=%.1f, wr=%.1f)\n", cfg.PrecisionWeight, cfg.RecallWeight)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintf(out, "%-12s %-8s %-8s %-8s %-8s\n", "Profile", "Prec", "Rec", "F1", "Weighted")
	for _, r := range results {
		fmt.Fprintf(out, "%-12s %-8.2f %-8.2f %-8.2f %-8.2f\n",
			r.Profile.Name, r.Metrics.Precision, r.Metrics.Recall, r.Metrics.F1, r.Metrics.WeightedScore)
	}
	fmt.Fprintln(out, strings.Repeat("-", 50))
	if len(results) > 0 {
		fmt.Fprintf(out, "Best: %s (Weighted: %.2f)\n", results[0].Profile.Name, results[0].Metrics.WeightedScore)
	}
	return nil
}

func printStats(cmd *cobra.Command, s bench.Stats) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nDocuments: %d  Bytes: %d  Runs: %d  Words: %d  Separators: %d  Runs/word: %.2f\n",
		s.Documents, s.Bytes, s.Runs, s.Words, s.Separators, s.RunsPerWord())

	cats := make([]tokenizer.Category, 0, len(s.Categories))
	for c := range s.Categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return s.Categories[cats[i]] > s.Categories[cats[j]] })
	for _, c := range cats {
		fmt.Fprintf(out, "  %-3s %d\n", c, s.Categories[c])
	}
}
