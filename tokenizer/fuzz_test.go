package tokenizer

import (
	"testing"
)

func FuzzScanRuns(f *testing.F) {
	f.Add("ThisIsThat")
	f.Add("")
	f.Add("elif moo:\n\tthat()")
	f.Add("café résumé naïve")
	f.Add("0x3faD != 12½")
	f.Add("\xff\xfe broken")

	f.Fuzz(func(t *testing.T, input string) {
		checkRuns(t, input)
		checkTokens(t, input)
	})
}
