package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks is the Combining Diacritical Marks block.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize returns the comparison key of s: lower-cased, decomposed (NFD)
// with combining diacritical marks removed, and trimmed.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	// Chains keep internal buffers, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, lower)
	if err != nil {
		out = lower
	}
	return strings.TrimSpace(out)
}
