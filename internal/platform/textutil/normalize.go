package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// macronFolder maps long-vowel and circumflex romaji letters to their plain
// ASCII forms so that "shōwa", "shouwa" spelled with diacritics, and "showa"
// normalize to comparable keys.
var macronFolder = strings.NewReplacer(
	"ā", "a",
	"ē", "e",
	"ī", "i",
	"ō", "o",
	"ū", "u",
	"â", "a",
	"ê", "e",
	"î", "i",
	"ô", "o",
	"û", "u",
)

// NormalizeText trims surrounding whitespace and applies Unicode NFKC so that
// full-width digits and letters fold to their ASCII equivalents.
func NormalizeText(s string) string {
	return norm.NFKC.String(strings.TrimSpace(s))
}

// NormalizeKey produces the canonical matching key for an era alias:
// NFKC-folded, lower-cased, with romaji diacritics flattened.
func NormalizeKey(s string) string {
	if s == "" {
		return ""
	}
	return macronFolder.Replace(strings.ToLower(NormalizeText(s)))
}
