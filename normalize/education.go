package normalize

import (
	"strings"

	"github.com/brewsearch/brew/core"
)

// maxEducationItems caps how many education entries feed the embedding text.
const maxEducationItems = 5

// Degree words that indicate the field (or degree) names a major.
var majorKeywords = []string{
	"major", "bachelor", "master", "phd", "doctorate", "msc", "bsc", "ba", "ma",
}

// EducationItems builds education items from parsed entries, tying each
// institution to its degree details. One entry yields exactly one item;
// non-object entries are skipped.
func EducationItems(entries []core.Entry) []core.EducationItem {
	items := make([]core.EducationItem, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(core.MapEntry)
		if !ok {
			continue
		}

		item := core.EducationItem{
			Institution: CleanText(core.Stringify(m["title"])),
			Degree:      CleanText(core.Stringify(m["degree"])),
			Field:       CleanText(core.Stringify(m["field"])),
			StartYear:   core.Stringify(m["start_year"]),
			EndYear:     core.Stringify(m["end_year"]),
			URL:         CleanText(core.Stringify(m["url"])),
		}

		// Major/minor are inferred from keyword presence in degree+field.
		combo := strings.ToLower(item.Degree + " " + item.Field)
		fieldOrDegree := item.Field
		if fieldOrDegree == "" {
			fieldOrDegree = item.Degree
		}
		if strings.Contains(combo, "minor") {
			item.Minor = fieldOrDegree
		}
		for _, w := range majorKeywords {
			if strings.Contains(combo, w) {
				item.Major = fieldOrDegree
				break
			}
		}

		items = append(items, item)
	}
	return items
}

// renderEducation renders at most maxEducationItems items as the
// "Education Details" section value, one line per item joined with " | ".
func renderEducation(items []core.EducationItem) string {
	if len(items) > maxEducationItems {
		items = items[:maxEducationItems]
	}

	lines := make([]string, 0, len(items))
	for _, e := range items {
		var degField string
		switch {
		case e.Degree != "" && e.Field != "":
			degField = e.Degree + " in " + e.Field
		case e.Degree != "":
			degField = e.Degree
		default:
			degField = e.Field
		}

		head := degField
		if e.Institution != "" {
			if head != "" {
				head += " from " + e.Institution
			} else {
				head = "from " + e.Institution
			}
		}

		var mm []string
		if e.Major != "" {
			mm = append(mm, "Major: "+e.Major)
		}
		if e.Minor != "" {
			mm = append(mm, "Minor: "+e.Minor)
		}

		segs := make([]string, 0, 2)
		if head != "" {
			segs = append(segs, head)
		}
		if len(mm) > 0 {
			segs = append(segs, strings.Join(mm, ", "))
		}
		line := strings.Join(segs, ", ")

		if span := dateSpan(e.StartYear, e.EndYear); span != "" {
			if line != "" {
				line += " " + span
			} else {
				line = span
			}
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, " | ")
}
