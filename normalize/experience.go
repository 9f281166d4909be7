package normalize

import (
	"strings"

	"github.com/brewsearch/brew/core"
)

// maxExperienceItems caps how many experience entries feed the embedding text.
const maxExperienceItems = 6

// ExperienceItems builds experience items from parsed entries, tying each
// company to a role. An entry carrying a nested positions list expands into
// one item per position; positions inherit the parent's company, industry,
// and dates, and a position's own title, description, and dates take
// precedence when present.
func ExperienceItems(entries []core.Entry) []core.ExperienceItem {
	items := make([]core.ExperienceItem, 0, len(entries))
	for _, entry := range entries {
		m, ok := entry.(core.MapEntry)
		if !ok {
			continue
		}

		parent := core.ExperienceItem{
			Company:     CleanText(core.Stringify(m["company"])),
			Industry:    CleanText(core.Stringify(m["industry"])),
			Title:       CleanText(core.Stringify(m["title"])),
			Description: CleanText(core.Stringify(m["description"])),
			StartDate:   m.First("start_date", "start", "from"),
			EndDate:     m.First("end_date", "end", "to"),
		}

		positions := m.List("positions")
		if len(positions) == 0 {
			if parent.Company != "" || parent.Title != "" || parent.Description != "" {
				items = append(items, parent)
			}
			continue
		}

		for _, posEntry := range positions {
			pm, ok := posEntry.(core.MapEntry)
			if !ok {
				continue
			}
			item := parent
			if t := CleanText(core.Stringify(pm["title"])); t != "" {
				item.Title = t
			}
			if d := CleanText(core.Stringify(pm["description"])); d != "" {
				item.Description = d
			}
			if s := pm.First("start_date", "start"); s != "" {
				item.StartDate = s
			}
			if e := pm.First("end_date", "end"); e != "" {
				item.EndDate = e
			}
			items = append(items, item)
		}
	}
	return items
}

// renderExperience renders at most maxExperienceItems items as the
// "Experience Details" section value. An item whose company and title both
// already appear (case-insensitively) inside the current position string is
// suppressed so the "Current Position" line is not duplicated.
func renderExperience(items []core.ExperienceItem, currentPosition string) string {
	if len(items) > maxExperienceItems {
		items = items[:maxExperienceItems]
	}

	positionLower := strings.ToLower(currentPosition)
	lines := make([]string, 0, len(items))
	for _, x := range items {
		if x.Company != "" && x.Title != "" &&
			strings.Contains(positionLower, strings.ToLower(x.Company)) &&
			strings.Contains(positionLower, strings.ToLower(x.Title)) {
			continue
		}

		segs := make([]string, 0, 5)
		if x.Title != "" {
			segs = append(segs, x.Title)
		}
		if x.Company != "" {
			segs = append(segs, "at "+x.Company)
		}
		if x.Industry != "" {
			segs = append(segs, "["+x.Industry+"]")
		}
		if span := dateSpan(x.StartDate, x.EndDate); span != "" {
			segs = append(segs, span)
		}
		if x.Description != "" {
			segs = append(segs, x.Description)
		}
		if len(segs) > 0 {
			lines = append(lines, strings.Join(segs, " "))
		}
	}
	return strings.Join(lines, " | ")
}
