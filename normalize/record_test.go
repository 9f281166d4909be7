package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/core"
)

func adaRecord() *core.RawRecord {
	return &core.RawRecord{
		ID:             "p1",
		Name:           "Ada Lovelace",
		Position:       "Senior Data Scientist at Babbage Analytical",
		About:          "I love machine learning and statistics.",
		City:           "London",
		CountryCode:    "GB",
		CurrentCompany: "Babbage Analytical",
		Experience: `[{"company": "Babbage & Co", "industry": "Computing",
			"positions": [{"title": "Engineer", "start_date": "1840", "end_date": "1842", "description": "Built engines"}]}]`,
		Education:           `[{"title": "University of London", "degree": "BSc", "field": "Mathematics", "start_year": 1833, "end_year": 1835}]`,
		Languages:           `["English", "French"]`,
		Certifications:      `[{"title": "Difference Engine Operator"}]`,
		VolunteerExperience: `[{"company": "Royal Society", "role": "Mentor"}]`,
	}
}

func TestRecordEmbeddingText(t *testing.T) {
	profile := Record(adaRecord())

	want := strings.Join([]string{
		"Name: Ada Lovelace",
		"Current Position: Senior Data Scientist at Babbage Analytical",
		"Location: London, GB",
		"About: I love machine learning and statistics.",
		"Interests: machine learning, statistics, learning",
		"Skills: Machine Learning, Statistics",
		"Education Details: BSc in Mathematics from University of London, Major: Mathematics (1833–1835)",
		"Experience Details: Engineer at Babbage & Co [Computing] (1840–1842) Built engines",
		"Languages: English, French",
		"Certifications: Difference Engine Operator",
		"Volunteer: Mentor at Royal Society",
	}, "\n")

	assert.Equal(t, want, profile.EmbeddingText)
	assert.Equal(t, "p1", profile.ProfileID)
	assert.NotContains(t, profile.EmbeddingText, "Current Company",
		"company repeated inside the position is suppressed")
}

func TestRecordDeterministic(t *testing.T) {
	a := Record(adaRecord())
	b := Record(adaRecord())

	assert.Equal(t, a, b, "identical input yields a byte-identical profile")
}

func TestRecordCompanyLineWhenDistinct(t *testing.T) {
	rec := adaRecord()
	rec.Position = "Senior Data Scientist"

	profile := Record(rec)
	assert.Contains(t, profile.EmbeddingText, "Current Company: Babbage Analytical")
}

func TestRecordMalformedColumnsDegrade(t *testing.T) {
	rec := &core.RawRecord{
		Name:       "Broken Row",
		Experience: `{not json at all`,
		Education:  "null",
		Languages:  `["English"]`,
	}

	profile := Record(rec)
	require.NotNil(t, profile)

	assert.Contains(t, profile.EmbeddingText, "Name: Broken Row")
	assert.Contains(t, profile.EmbeddingText, "Languages: English")
	assert.NotContains(t, profile.EmbeddingText, "Experience Details:")
}

func TestRecordEmptyInput(t *testing.T) {
	profile := Record(&core.RawRecord{})

	assert.Equal(t, "", profile.Name)
	assert.Equal(t, "", profile.EmbeddingText)
}

func TestDateSpan(t *testing.T) {
	assert.Equal(t, "(2019–2021)", dateSpan("2019", "2021"))
	assert.Equal(t, "(2019–?)", dateSpan("2019", ""))
	assert.Equal(t, "(?–2021)", dateSpan("", "2021"))
	assert.Equal(t, "", dateSpan("", ""))
}
