// Package wordrun splits text into word and separator tokens by Unicode
// general category.
//
// # Quick Start
//
//	tok, err := wordrun.Open("commands.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer tok.Close()
//
//	for t := range tok.Tokens("elif moo:\n\tthat()") {
//	    fmt.Printf("%q separator=%v\n", t.Text(), t.Separator)
//	}
//
// # How text is split
//
// Each character is classified by its general category, with punctuation
// and symbols folded to "P", numbers to "N" and space separators to "Z".
// Adjacent characters of the same class form a run. Runs whose class is a
// separator (punctuation, spaces, control and format characters) become
// tokens of their own; all other runs between two separators form a single
// word token, so "0x3faD" and "ThisIsThat" are one word each.
//
// Concatenating the tokens always gives back the input.
//
// # Thread Safety
//
// Tokenizer is safe for concurrent use. The sequences it returns are not;
// each range over a sequence scans the text again from the start.
//
// # Dictionaries
//
// Match reports which word tokens appear in the loaded dictionary. See
// package dictionary for the file formats.
package wordrun
