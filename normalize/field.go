package normalize

import (
	"encoding/json"

	"github.com/brewsearch/brew/core"
)

// Field is the parsed form of one nested JSON column. Exactly one variant
// is populated: Entries when the column held a JSON array, Text when the
// content was malformed or scalar and degraded to cleaned text.
type Field struct {
	Entries []core.Entry
	Text    string
}

// ParseField parses a nested JSON column into tagged entries. Empty and
// "null" columns yield a zero Field. Content that does not parse as a JSON
// array falls back to the cleaned raw string; this function never fails,
// which is what keeps a single corrupt row from aborting a corpus build.
func ParseField(raw string) Field {
	if raw == "" || raw == "null" {
		return Field{}
	}
	var arr []any
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return Field{Text: CleanText(raw)}
	}
	return Field{Entries: core.EntriesOf(arr)}
}
