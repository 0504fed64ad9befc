package calendar

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeKeyword folds a search keyword to clean lowercase ASCII so the
// API's free-text q parameter matches regardless of accents: NFD decompose,
// drop combining marks, drop any remaining non-ASCII runes, lowercase.
func NormalizeKeyword(keyword string) string {
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, keyword)
	if err != nil {
		folded = keyword
	}
	var b strings.Builder
	for _, r := range folded {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return strings.ToLower(b.String())
}
