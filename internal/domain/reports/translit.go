package reports

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold covers letters NFD decomposition cannot reduce: the Vietnamese
// d-with-stroke, German sharp s, Scandinavian vowels and a few ligatures.
// Accented vowels (Vietnamese tone marks, umlauts, Spanish/French accents)
// are handled by decomposition plus combining-mark removal.
var asciiFold = map[rune]string{
	'đ': "d", 'Đ': "D",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'ø': "o", 'Ø': "O",
	'å': "a", 'Å': "A",
	'ł': "l", 'Ł': "L",
	'þ': "th", 'Þ': "Th",
	'ð': "d", 'Ð': "D",
	'ı': "i",
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ToASCII transliterates text to its closest ASCII form: explicit
// substitutions first, then diacritic decomposition, then removal of any
// remaining non-printable-ASCII codepoint, collapsing runs of whitespace.
func ToASCII(value string) string {
	var folded strings.Builder
	folded.Grow(len(value))
	for _, r := range value {
		if replacement, ok := asciiFold[r]; ok {
			folded.WriteString(replacement)
			continue
		}
		folded.WriteRune(r)
	}

	decomposed, _, err := transform.String(stripMarks, folded.String())
	if err != nil {
		decomposed = folded.String()
	}

	var out strings.Builder
	out.Grow(len(decomposed))
	lastSpace := false
	for _, r := range decomposed {
		if unicode.IsSpace(r) {
			if !lastSpace && out.Len() > 0 {
				out.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		if r < 0x20 || r > 0x7e {
			continue
		}
		out.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(out.String(), " ")
}
