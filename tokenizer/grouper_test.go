package tokenizer

import (
	"slices"
	"testing"
)

// sliceSource replays fixed runs, letting tests feed raw categories.
func sliceSource(runs ...Run) RunSource {
	i := 0
	return RunSourceFunc(func() (Run, bool) {
		if i >= len(runs) {
			return Run{}, false
		}
		i++
		return runs[i-1], true
	})
}

func drain(g *Grouper) []Token {
	var toks []Token
	for {
		tok, ok := g.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestDefaultSeparators(t *testing.T) {
	want := []Category{"C", "Cc", "Cf", "P", "Pc", "Pd", "Pe", "Po", "Ps", "Sc", "Sm", "Z", "Zs"}
	if got := DefaultSeparators().Categories(); !slices.Equal(got, want) {
		t.Errorf("Categories() = %q, want %q", got, want)
	}
	if DefaultSeparators().Len() != len(want) {
		t.Errorf("Len() = %d, want %d", DefaultSeparators().Len(), len(want))
	}
	for _, c := range []Category{"Ll", "Lu", Number, "Mn", "Cn", "Co", "Sk", "So", "Pi", "Pf"} {
		if DefaultSeparators().Contains(c) {
			t.Errorf("%q should not separate words", c)
		}
	}
}

func TestGrouper_RawCategories(t *testing.T) {
	// Uncoarsened input reaches the raw entries of the default set.
	src := sliceSource(
		Run{Category: "Ll", Text: "a"},
		Run{Category: "Po", Text: "!"},
		Run{Category: "Ll", Text: "b"},
		Run{Category: "Sk", Text: "^"},
		Run{Category: "Ll", Text: "c"},
		Run{Category: "Zs", Text: " "},
	)

	toks := drain(NewGrouper(src, DefaultSeparators()))

	var got []string
	for _, tok := range toks {
		got = append(got, tok.Text())
	}
	want := []string{"a", "!", "b^c", " "}
	if !slices.Equal(got, want) {
		t.Fatalf("tokens = %q, want %q", got, want)
	}
	if !toks[1].Separator || !toks[3].Separator || toks[2].Separator {
		t.Errorf("separator flags wrong: %+v", toks)
	}
}

func TestGrouper_ConsecutiveSeparators(t *testing.T) {
	src := sliceSource(
		Run{Category: Punctuation, Text: "("},
		Run{Category: Separator, Text: " "},
		Run{Category: "Cc", Text: "\n"},
	)

	toks := drain(NewGrouper(src, DefaultSeparators()))
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	for i, tok := range toks {
		if !tok.Separator || len(tok.Runs) != 1 {
			t.Errorf("token %d = %+v, want singleton separator", i, tok)
		}
	}
}

func TestGrouper_ExhaustedStaysExhausted(t *testing.T) {
	g := NewGrouper(sliceSource(Run{Category: "Ll", Text: "w"}), DefaultSeparators())
	if _, ok := g.Next(); !ok {
		t.Fatal("expected word token")
	}
	for i := 0; i < 2; i++ {
		if tok, ok := g.Next(); ok {
			t.Errorf("Next after end returned %+v", tok)
		}
	}
}

func TestGrouper_TokensDoNotAlias(t *testing.T) {
	src := sliceSource(
		Run{Category: "Ll", Text: "a"},
		Run{Category: "Lu", Text: "B"},
		Run{Category: Separator, Text: " "},
		Run{Category: "Ll", Text: "c"},
	)
	toks := drain(NewGrouper(src, DefaultSeparators()))
	if got := toks[0].Text(); got != "aB" {
		t.Errorf("first token mutated to %q", got)
	}
	if got := toks[2].Text(); got != "c" {
		t.Errorf("last token = %q", got)
	}
}

func TestSeparatorSet_Custom(t *testing.T) {
	seps := NewSeparatorSet(Separator)

	var got []string
	for tok := range seps.GroupTokens(ScanRuns("x != this")) {
		got = append(got, tok.Text())
	}
	want := []string{"x", " ", "!=", " ", "this"}
	if !slices.Equal(got, want) {
		t.Errorf("tokens = %q, want %q", got, want)
	}

	got = got[:0]
	for tok := range seps.GroupTokens(ScanRuns("a.b c")) {
		got = append(got, tok.Text())
	}
	if !slices.Equal(got, []string{"a.b", " ", "c"}) {
		t.Errorf("punctuation should join words when not a separator, got %q", got)
	}
}

func TestSeparatorSet_Zero(t *testing.T) {
	var seps SeparatorSet
	if seps.Contains(Separator) {
		t.Error("zero set should be empty")
	}

	var got []string
	for tok := range seps.GroupTokens(ScanRuns("a b.c")) {
		got = append(got, tok.Text())
	}
	if !slices.Equal(got, []string{"a b.c"}) {
		t.Errorf("tokens = %q, want one token", got)
	}
}

func TestGroupTokens_EarlyStop(t *testing.T) {
	n := 0
	for range GroupTokens(ScanRuns("a b c d e")) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("consumed %d tokens, want 3", n)
	}
}

func TestGroupTokens_Empty(t *testing.T) {
	for tok := range GroupTokens(ScanRuns("")) {
		t.Errorf("unexpected token %+v", tok)
	}
}
