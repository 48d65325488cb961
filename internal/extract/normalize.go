package extract

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// cleaner normalizes to NFC, maps non-breaking spaces onto plain spaces,
// and drops control characters that occasionally leak out of spreadsheet
// exports.
var cleaner = transform.Chain(
	norm.NFC,
	runes.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return ' '
		}
		return r
	}),
	runes.Remove(runes.Predicate(func(r rune) bool {
		return unicode.IsControl(r) && r != '\t'
	})),
)

// CleanCell normalizes one header or data cell. On a transform error the
// input is returned unchanged; a mangled cell is rejected downstream with a
// row-level reason instead of aborting the read.
func CleanCell(s string) string {
	out, _, err := transform.String(cleaner, s)
	if err != nil {
		return s
	}
	return out
}
