package tokenizer

import (
	"testing"
	"unicode/utf8"
)

func TestRawCategory(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		{'A', "Lu"},
		{'a', "Ll"},
		{'ǅ', "Lt"},
		{'ʰ', "Lm"},
		{'中', "Lo"},
		{'\u0301', "Mn"},
		{'5', "Nd"},
		{'Ⅻ', "Nl"},
		{'½', "No"},
		{'_', "Pc"},
		{'-', "Pd"},
		{'(', "Ps"},
		{')', "Pe"},
		{'«', "Pi"},
		{'»', "Pf"},
		{'!', "Po"},
		{'+', "Sm"},
		{'$', "Sc"},
		{'^', "Sk"},
		{'©', "So"},
		{' ', "Zs"},
		{'\u2028', "Zl"},
		{'\u2029', "Zp"},
		{'\n', "Cc"},
		{'\u00AD', "Cf"},
		{'\uE000', "Co"},
		{'\u0378', Unassigned},
		{utf8.RuneError, "So"},
	}

	for _, tc := range tests {
		if got := RawCategory(tc.r); got != tc.want {
			t.Errorf("RawCategory(%U) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want Category
	}{
		// punctuation and every symbol subtype fold to P
		{'_', Punctuation},
		{'-', Punctuation},
		{'(', Punctuation},
		{')', Punctuation},
		{'«', Punctuation},
		{'»', Punctuation},
		{'.', Punctuation},
		{'+', Punctuation},
		{'$', Punctuation},
		{'^', Punctuation},
		{'©', Punctuation},

		{'7', Number},
		{'Ⅻ', Number},
		{'½', Number},

		{' ', Separator},
		{'\u00A0', Separator},
		{'\u2028', Separator},
		{'\u2029', Separator},

		// passed through unchanged
		{'A', "Lu"},
		{'z', "Ll"},
		{'中', "Lo"},
		{'\t', "Cc"},
		{'\u200B', "Cf"},
		{'\u0378', Unassigned},
	}

	for _, tc := range tests {
		if got := Classify(tc.r); got != tc.want {
			t.Errorf("Classify(%U) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestClassify_ASCIIMatchesTables(t *testing.T) {
	for r := rune(0); r < utf8.RuneSelf; r++ {
		if got, want := RawCategory(r), lookup(r); got != want {
			t.Errorf("RawCategory(%U) = %q, table lookup = %q", r, got, want)
		}
	}
}

func TestCoarsen_Unknown(t *testing.T) {
	if got := Coarsen("Xx"); got != "Xx" {
		t.Errorf("Coarsen(%q) = %q, want unchanged", "Xx", got)
	}
}
