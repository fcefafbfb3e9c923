package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// Category is a Unicode general category code, either raw ("Lu", "Po", ...)
// or coarsened ("P", "N", "Z").
type Category string

// Coarsened categories.
const (
	Punctuation Category = "P" // punctuation and symbols
	Number      Category = "N"
	Separator   Category = "Z" // space, line and paragraph separators
)

// Unassigned is returned for code points outside every category table.
const Unassigned Category = "Cn"

// coarse folds raw categories into their coarsened code. Anything missing
// passes through unchanged.
var coarse = map[Category]Category{
	"Pc": Punctuation,
	"Pd": Punctuation,
	"Pe": Punctuation,
	"Pf": Punctuation,
	"Pi": Punctuation,
	"Po": Punctuation,
	"Ps": Punctuation,

	"Sm": Punctuation,
	"Sc": Punctuation,
	"Sk": Punctuation,
	"So": Punctuation,

	"Nd": Number,
	"No": Number,
	"Nl": Number,

	"Zl": Separator,
	"Zs": Separator,
	"Zp": Separator,
}

// categoryTables is ordered so that common text hits early.
var categoryTables = []struct {
	code  Category
	table *unicode.RangeTable
}{
	{"Ll", unicode.Ll},
	{"Lu", unicode.Lu},
	{"Zs", unicode.Zs},
	{"Po", unicode.Po},
	{"Nd", unicode.Nd},
	{"Lo", unicode.Lo},
	{"Cc", unicode.Cc},
	{"Ps", unicode.Ps},
	{"Pe", unicode.Pe},
	{"Pd", unicode.Pd},
	{"Sm", unicode.Sm},
	{"Sc", unicode.Sc},
	{"Sk", unicode.Sk},
	{"So", unicode.So},
	{"Pc", unicode.Pc},
	{"Pi", unicode.Pi},
	{"Pf", unicode.Pf},
	{"Lt", unicode.Lt},
	{"Lm", unicode.Lm},
	{"Mn", unicode.Mn},
	{"Mc", unicode.Mc},
	{"Me", unicode.Me},
	{"Nl", unicode.Nl},
	{"No", unicode.No},
	{"Zl", unicode.Zl},
	{"Zp", unicode.Zp},
	{"Cf", unicode.Cf},
	{"Co", unicode.Co},
	{"Cs", unicode.Cs},
}

// ascii caches the raw category of every ASCII code point.
var ascii [utf8.RuneSelf]Category

func init() {
	for r := rune(0); r < utf8.RuneSelf; r++ {
		ascii[r] = lookup(r)
	}
}

func lookup(r rune) Category {
	for _, c := range categoryTables {
		if unicode.Is(c.table, r) {
			return c.code
		}
	}
	return Unassigned
}

// RawCategory returns the two-letter Unicode general category of r.
func RawCategory(r rune) Category {
	if r >= 0 && r < utf8.RuneSelf {
		return ascii[r]
	}
	return lookup(r)
}

// Coarsen maps a raw category to its coarsened code.
func Coarsen(c Category) Category {
	if folded, ok := coarse[c]; ok {
		return folded
	}
	return c
}

// Classify returns the coarsened category of r. It never fails: unassigned
// code points classify as Unassigned.
func Classify(r rune) Category {
	return Coarsen(RawCategory(r))
}
