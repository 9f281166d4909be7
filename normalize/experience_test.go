package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/core"
)

func TestExperienceItemsFlat(t *testing.T) {
	f := ParseField(`[{"company": "Babbage & Co", "title": "Engineer", "industry": "Computing",
		"start_date": "1840", "end_date": "1842", "description": "Built engines"}]`)

	items := ExperienceItems(f.Entries)
	require.Len(t, items, 1)

	assert.Equal(t, "Babbage & Co", items[0].Company)
	assert.Equal(t, "Engineer", items[0].Title)
	assert.Equal(t, "1840", items[0].StartDate)
	assert.Equal(t, "1842", items[0].EndDate)
}

func TestExperienceItemsPositionsExpand(t *testing.T) {
	f := ParseField(`[{
		"company": "Babbage & Co",
		"industry": "Computing",
		"title": "Staff",
		"start_date": "1838",
		"positions": [
			{"title": "Junior Engineer", "start_date": "1838", "end_date": "1840"},
			{"title": "Senior Engineer", "start_date": "1840"}
		]
	}]`)

	items := ExperienceItems(f.Entries)
	require.Len(t, items, 2, "one item per position")

	assert.Equal(t, "Babbage & Co", items[0].Company, "positions inherit the parent company")
	assert.Equal(t, "Junior Engineer", items[0].Title, "position title overrides parent")
	assert.Equal(t, "1840", items[0].EndDate)

	assert.Equal(t, "Senior Engineer", items[1].Title)
	assert.Equal(t, "Computing", items[1].Industry)
	assert.Equal(t, "1840", items[1].StartDate)
}

func TestExperienceItemsEmptyParentDropped(t *testing.T) {
	f := ParseField(`[{"location": "London"}]`)

	assert.Empty(t, ExperienceItems(f.Entries))
}

func TestRenderExperienceSuppressesCurrentRole(t *testing.T) {
	items := []core.ExperienceItem{
		{Company: "Babbage & Co", Title: "Engineer"},
		{Company: "Royal Society", Title: "Fellow"},
	}

	got := renderExperience(items, "Engineer at Babbage & Co")
	assert.Equal(t, "Fellow at Royal Society", got,
		"items repeating the current position are suppressed")
}

func TestRenderExperienceSegments(t *testing.T) {
	items := []core.ExperienceItem{{
		Company:     "Babbage & Co",
		Industry:    "Computing",
		Title:       "Engineer",
		Description: "Built engines",
		StartDate:   "1840",
	}}

	got := renderExperience(items, "")
	assert.Equal(t, "Engineer at Babbage & Co [Computing] (1840–?) Built engines", got)
}

func TestRenderExperienceCapped(t *testing.T) {
	items := make([]core.ExperienceItem, 10)
	for i := range items {
		items[i] = core.ExperienceItem{Title: "Engineer"}
	}

	got := renderExperience(items, "")
	assert.Len(t, splitPipe(got), maxExperienceItems)
}
