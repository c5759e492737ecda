package util

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

const (
	// TextPlaceholder replaces code points the document encoding cannot hold.
	TextPlaceholder = '?'
	// FilenameSubstitute replaces every disallowed filename character.
	FilenameSubstitute = '_'

	disallowedFilenameChars = " /\\*?[]\"':"
)

var smartQuotes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"“", "\"",
	"”", "\"",
)

// SanitizeText makes s representable in Windows-1252, the single-byte
// encoding of the PDF core fonts. Accented letters are composed (NFC), smart
// quotes become ASCII quotes and anything else outside the code page becomes
// TextPlaceholder. It accepts any input, including invalid UTF-8.
func SanitizeText(s string) string {
	s = smartQuotes.Replace(norm.NFC.String(s))

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(TextPlaceholder)

			continue
		}

		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			b.WriteRune(TextPlaceholder)

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}

// SanitizeFilename makes name a safe storage path segment: spaces, path
// separators, wildcard and quote characters, control characters and any
// non-ASCII letter are replaced by FilenameSubstitute. It is idempotent.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		if r > unicode.MaxASCII || unicode.IsControl(r) || strings.ContainsRune(disallowedFilenameChars, r) {
			b.WriteRune(FilenameSubstitute)

			continue
		}

		b.WriteRune(r)
	}

	return b.String()
}
