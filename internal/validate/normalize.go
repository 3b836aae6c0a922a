package validate

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes a string to NFD, removes combining marks (accents,
// tildes), and recomposes to NFC. Kept as NFC output rather than
// ASCII-folded, since the only use is diacritic-insensitive comparison,
// not transliteration.
var stripMarksTransform = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func stripMarks(s string) string {
	result, _, err := transform.String(stripMarksTransform, s)
	if err != nil {
		return s
	}
	return result
}

// normalize trims surrounding whitespace, lowercases, and NFC-normalizes a
// submission before comparison. Diacritics are significant and are NOT
// stripped here — only in normalizeIgnoringAccents, which the accent-only
// check and the verb-aware classification tiers compare with.
func normalize(s string) string {
	return norm.NFC.String(strings.ToLower(strings.TrimSpace(s)))
}

func normalizeIgnoringAccents(s string) string {
	return stripMarks(normalize(s))
}
