package normalize

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// CleanText normalizes free text from the source export: any run of
// whitespace collapses to a single space, surrounding space is trimmed,
// and doubled quote escapes left over from the export are unescaped.
// The "null" sentinel the export uses for missing values maps to "".
func CleanText(text string) string {
	if text == "" || text == "null" {
		return ""
	}
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, `\"`, `"`)
	text = strings.ReplaceAll(text, `\'`, "'")
	return text
}
