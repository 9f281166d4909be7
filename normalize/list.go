package normalize

import (
	"strings"

	"github.com/brewsearch/brew/core"
)

// NamedList normalizes a heterogeneous entry list to display values. Bare
// strings are used as-is; for objects the first present key from the
// ordered preference list wins. Entries without a usable value are dropped.
func NamedList(entries []core.Entry, keys ...string) []string {
	if len(keys) == 0 {
		keys = []string{"title", "name", "label"}
	}
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		switch v := entry.(type) {
		case core.StringEntry:
			if s := strings.TrimSpace(string(v)); s != "" {
				out = append(out, s)
			}
		case core.MapEntry:
			if s := strings.TrimSpace(v.First(keys...)); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// VolunteerLines renders volunteer entries as "<role> at <org>" lines.
// The organization is omitted when it repeats the role; entries with
// neither are dropped.
func VolunteerLines(entries []core.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(core.MapEntry)
		if !ok {
			continue
		}
		org := strings.TrimSpace(m.First("company", "organization", "title"))
		role := strings.TrimSpace(m.First("role", "position", "subtitle", "title"))

		segs := make([]string, 0, 2)
		if role != "" {
			segs = append(segs, role)
		}
		if org != "" && (role == "" || org != role) {
			segs = append(segs, "at "+org)
		}
		if len(segs) > 0 {
			lines = append(lines, strings.Join(segs, " "))
		}
	}
	return lines
}
