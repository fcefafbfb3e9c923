package render

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-wordrun/dictionary"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestTokens_PlainIsLossless(t *testing.T) {
	inputs := []string{
		"elif moo:\n\tthat()",
		"0x3faD != 12",
		"",
		"tabs\tand\r\nnewlines",
	}

	for _, in := range inputs {
		var buf bytes.Buffer
		r := New(&buf, dictionary.New("", "that"), false)
		require.NoError(t, r.Tokens(tokenizer.Tokenize(in)))
		assert.Equal(t, in, buf.String())
	}
}

func TestTokens_ColorKeepsText(t *testing.T) {
	in := "elif moo:\n\tthat() 42"

	var buf bytes.Buffer
	r := New(&buf, dictionary.New("", "that"), true)
	require.NoError(t, r.Tokens(tokenizer.Tokenize(in)))

	assert.Equal(t, in, ansi.ReplaceAllString(buf.String(), ""))
}

func TestRuns(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, nil, false)
	require.NoError(t, r.Runs(tokenizer.ScanRuns("x != 7\n")))

	want := "Ll  \"x\"\n" +
		"Z   \" \"\n" +
		"P   \"!=\"\n" +
		"Z   \" \"\n" +
		"N   \"7\"\n" +
		"Cc  \"\\n\"\n"
	assert.Equal(t, want, buf.String())
}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, dictionary.New("", "that"), false)
	require.NoError(t, r.Lines(tokenizer.Tokenize("this that")))

	want := "  \"this\"\n" +
		"  \" \"\n" +
		"* \"that\"\n"
	assert.Equal(t, want, buf.String())
}

func TestVerbatim(t *testing.T) {
	for _, c := range []tokenizer.Category{tokenizer.Separator, "Cc", "Cf"} {
		assert.True(t, verbatim(c), "%s", c)
	}
	for _, c := range []tokenizer.Category{tokenizer.Punctuation, tokenizer.Number, "Ll"} {
		assert.False(t, verbatim(c), "%s", c)
	}
}
