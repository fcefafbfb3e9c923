//go:build ignore

// Process raw Project Gutenberg downloads into benchmark corpus format.
// Usage: go run ./scripts/process-gutenberg.go
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Book metadata
var books = map[string]struct {
	Title  string
	Author string
}{
	"moby_dick":   {"Moby Dick", "Herman Melville"},
	"tom_sawyer":  {"The Adventures of Tom Sawyer", "Mark Twain"},
	"jane_eyre":   {"Jane Eyre", "Charlotte Brontë"},
	"don_quixote": {"Don Quixote", "Miguel de Cervantes"},
}

const maxBody = 50000

var (
	startMarker = regexp.MustCompile(`\*\*\* ?START OF (THE|THIS) PROJECT GUTENBERG EBOOK[^\n]*\n`)
	endMarker   = regexp.MustCompile(`\*\*\* ?END OF (THE|THIS) PROJECT GUTENBERG EBOOK`)
	multiBlank  = regexp.MustCompile(`\n{3,}`)
)

func main() {
	dir := "testdata/gutenberg"
	outDir := "testdata/corpus"

	files, err := filepath.Glob(filepath.Join(dir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No raw files found in %s\n", dir)
		os.Exit(1)
	}

	for _, raw := range files {
		id := strings.TrimSuffix(filepath.Base(raw), "_raw.txt")
		meta, ok := books[id]
		if !ok {
			fmt.Printf("Skipping unknown book: %s\n", id)
			continue
		}

		out := filepath.Join(outDir, id+".txt")
		if err := processBook(raw, out, meta.Title, meta.Author); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", id, err)
			continue
		}
		fmt.Printf("  -> %s\n", out)
	}
}

func processBook(inPath, outPath, title, author string) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	if loc := startMarker.FindStringIndex(text); loc != nil {
		text = text[loc[1]:]
	}
	if loc := endMarker.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	text = strings.TrimSpace(multiBlank.ReplaceAllString(text, "\n\n"))

	// Keep the benchmark small; cut at a line end.
	if len(text) > maxBody {
		if i := strings.LastIndexByte(text[:maxBody], '\n'); i > 0 {
			text = text[:i]
		}
	}

	header := fmt.Sprintf("# Source: https://www.gutenberg.org/\n# Title: %s\n# Author: %s\n\n", title, author)
	if err := os.WriteFile(outPath, []byte(header+text+"\n"), 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
