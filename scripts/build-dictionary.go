//go:build ignore

// Build a binary dictionary from the word forms of CoNLL-U treebank files.
// Usage: go run ./scripts/build-dictionary.go [-in testdata/ud-ewt] [-out testdata/ud-ewt.dict]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-wordrun/dictionary"
	"github.com/jamesainslie/go-wordrun/tokenizer"
)

func main() {
	inDir := flag.String("in", "testdata/ud-ewt", "Directory of .conllu files")
	outPath := flag.String("out", "testdata/ud-ewt.dict", "Output dictionary")
	name := flag.String("name", "ud-ewt", "Dictionary name")
	flag.Parse()

	files, err := filepath.Glob(filepath.Join(*inDir, "*.conllu"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No .conllu files in %s\n", *inDir)
		os.Exit(1)
	}

	var forms []string
	for _, path := range files {
		fmt.Printf("Reading %s...\n", path)
		f, err := readForms(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			continue
		}
		forms = append(forms, f...)
	}

	dict := dictionary.New(*name, forms...)
	if err := dict.Write(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing dictionary: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nDone! %d words written to %s\n", dict.Len(), *outPath)
}

// readForms returns the FORM column of every word line that is a single
// word token under the default separators.
func readForms(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var forms []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			continue
		}
		// Skip multiword ranges ("3-4") and empty nodes ("3.1")
		if strings.ContainsAny(cols[0], "-.") {
			continue
		}
		if isWord(cols[1]) {
			forms = append(forms, cols[1])
		}
	}
	return forms, scanner.Err()
}

func isWord(form string) bool {
	n := 0
	for tok := range tokenizer.Tokenize(form) {
		if tok.Separator {
			return false
		}
		n++
	}
	return n == 1
}
