package core

import "strconv"

// Entry is one element of a parsed nested column. Source exports mix bare
// strings and objects inside the same array, so every element carries an
// explicit variant tag: StringEntry or MapEntry. Consumers pattern-match
// with a type switch rather than duck-typing.
type Entry interface {
	isEntry()
}

// StringEntry is a bare string element.
type StringEntry string

func (StringEntry) isEntry() {}

// MapEntry is a structured object element.
type MapEntry map[string]any

func (MapEntry) isEntry() {}

// First returns the value of the first present, non-empty key from the
// ordered preference list, stringified. Returns "" when no key matches.
func (m MapEntry) First(keys ...string) string {
	for _, k := range keys {
		if s := Stringify(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// List returns the named field as a slice of entries, or nil when the field
// is absent or not an array.
func (m MapEntry) List(key string) []Entry {
	raw, ok := m[key].([]any)
	if !ok {
		return nil
	}
	return EntriesOf(raw)
}

// EntriesOf converts decoded JSON array elements into tagged entries.
// Elements that are neither strings nor objects are dropped.
func EntriesOf(raw []any) []Entry {
	entries := make([]Entry, 0, len(raw))
	for _, el := range raw {
		switch v := el.(type) {
		case string:
			entries = append(entries, StringEntry(v))
		case map[string]any:
			entries = append(entries, MapEntry(v))
		}
	}
	return entries
}

// Stringify renders a decoded JSON scalar as text. Numbers are rendered
// without a decimal point when integral, so year fields round-trip as
// "2020" rather than "2020.000000".
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
