package journalist

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy  = bluemonday.StrictPolicy()
	unicodeEscape = regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)
)

// sanitizeTitle removes HTML tags and escape leftovers some feeds put into titles.
func sanitizeTitle(s string) string {
	s = strictPolicy.Sanitize(s)
	// bluemonday escapes entities, the report is plain text
	s = html.UnescapeString(s)
	return strings.TrimSpace(replaceUnicodeSymbols(s))
}

// replaceUnicodeSymbols replaces Unicode escape sequences with their corresponding characters
func replaceUnicodeSymbols(s string) string {
	// Replace Unicode escape sequences (e.g., \u0026 with &)
	return unicodeEscape.ReplaceAllStringFunc(s, func(match string) string {
		unicodeCode := match[2:] // Ignore "\u" at the beginning
		num, err := strconv.ParseInt(unicodeCode, 16, 32)
		if err != nil {
			return match // If conversion fails, return the original sequence
		}
		return string(rune(num))
	})
}
