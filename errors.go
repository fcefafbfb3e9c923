package wordrun

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrDictionaryNotFound indicates the dictionary file does not exist.
	ErrDictionaryNotFound = errors.New("wordrun: dictionary file not found")

	// ErrInvalidDictionary indicates the dictionary file exists but is malformed.
	ErrInvalidDictionary = errors.New("wordrun: invalid dictionary format")

	// ErrUnknownCharset indicates the configured charset has no decoder.
	ErrUnknownCharset = errors.New("wordrun: unknown charset")

	// ErrInvalidText indicates input bytes could not be decoded to text.
	ErrInvalidText = errors.New("wordrun: invalid text encoding")
)
