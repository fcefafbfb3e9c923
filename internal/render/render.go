// Package render writes token streams to a terminal with highlighting.
package render

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/lipgloss"

	"github.com/jamesainslie/go-wordrun/dictionary"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

// Renderer highlights tokens. Whitespace, control and format runs are always
// written verbatim, so the rendered text reads the same as the input.
type Renderer struct {
	out   io.Writer
	dict  *dictionary.Dictionary
	color bool

	word      lipgloss.Style
	known     lipgloss.Style
	separator lipgloss.Style
	number    lipgloss.Style
	category  lipgloss.Style
}

// New creates a Renderer writing to w. Known words are looked up in dict,
// which may be nil. With color false all output is plain text.
func New(w io.Writer, dict *dictionary.Dictionary, color bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		out:       w,
		dict:      dict,
		color:     color,
		word:      lr.NewStyle(),
		known:     lr.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		separator: lr.NewStyle().Foreground(lipgloss.Color("8")),
		number:    lr.NewStyle().Foreground(lipgloss.Color("14")),
		category:  lr.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	}
}

// Tokens writes each token's text, styled by kind.
func (r *Renderer) Tokens(tokens iter.Seq[tokenizer.Token]) error {
	for tok := range tokens {
		known := !tok.Separator && r.dict.Contains(tok.Text())
		for _, run := range tok.Runs {
			style := r.word
			switch {
			case tok.Separator:
				style = r.separator
			case known:
				style = r.known
			case run.Category == tokenizer.Number:
				style = r.number
			}
			if err := r.write(style, run); err != nil {
				return err
			}
		}
	}
	return nil
}

// Runs writes one line per run: its category and quoted text.
func (r *Renderer) Runs(runs iter.Seq[tokenizer.Run]) error {
	for run := range runs {
		cat := fmt.Sprintf("%-3s", run.Category)
		if r.color {
			cat = r.category.Render(cat)
		}
		if _, err := fmt.Fprintf(r.out, "%s %q\n", cat, run.Text); err != nil {
			return fmt.Errorf("writing run: %w", err)
		}
	}
	return nil
}

// Lines writes one line per token, word tokens marked with their dictionary
// status.
func (r *Renderer) Lines(tokens iter.Seq[tokenizer.Token]) error {
	for tok := range tokens {
		text := fmt.Sprintf("%q", tok.Text())
		mark := " "
		switch {
		case tok.Separator:
			if r.color {
				text = r.separator.Render(text)
			}
		case r.dict.Contains(tok.Text()):
			mark = "*"
			if r.color {
				text = r.known.Render(text)
			}
		}
		if _, err := fmt.Fprintf(r.out, "%s %s\n", mark, text); err != nil {
			return fmt.Errorf("writing token: %w", err)
		}
	}
	return nil
}

func (r *Renderer) write(style lipgloss.Style, run tokenizer.Run) error {
	text := run.Text
	if r.color && !verbatim(run.Category) {
		text = style.Render(text)
	}
	if _, err := io.WriteString(r.out, text); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// verbatim reports whether a run may contain whitespace or invisible
// characters that styling would alter.
func verbatim(c tokenizer.Category) bool {
	switch c {
	case tokenizer.Separator, "Zs", "Zl", "Zp", "Cc", "Cf":
		return true
	}
	return false
}
