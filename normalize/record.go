package normalize

import (
	"strings"

	"github.com/brewsearch/brew/core"
)

// Record normalizes one raw export row into a Profile. It is deterministic:
// the same RawRecord always yields a byte-identical Profile and embedding
// text. It never fails; malformed nested columns degrade to cleaned text
// and missing scalars become empty strings.
func Record(rec *core.RawRecord) *core.Profile {
	experience := ParseField(rec.Experience)
	education := ParseField(rec.Education)
	languages := ParseField(rec.Languages)
	certifications := ParseField(rec.Certifications)
	volunteer := ParseField(rec.VolunteerExperience)

	// Skill and interest matching runs over the raw free text, including
	// the unparsed JSON columns, so keywords buried in descriptions of
	// malformed entries still count.
	freeText := rec.About + " " + rec.Position + " " + rec.Experience + " " + rec.Education
	interests := ExtractInterests(freeText)
	skills := ExtractSkills(freeText)

	profile := &core.Profile{
		Name:           CleanText(rec.Name),
		Position:       CleanText(rec.Position),
		About:          CleanText(rec.About),
		ProfileURL:     CleanText(rec.URL),
		Avatar:         CleanText(rec.Avatar),
		City:           CleanText(rec.City),
		CountryCode:    CleanText(rec.CountryCode),
		Region:         CleanText(rec.Region),
		CurrentCompany: CleanText(rec.CurrentCompany),
		CompanyID:      CleanText(rec.CompanyID),
		Timestamp:      CleanText(rec.Timestamp),
		ProfileID:      CleanText(rec.ID),
	}

	profile.EmbeddingText = embeddingText(profile, sections{
		interests:      interests,
		skills:         skills,
		education:      EducationItems(education.Entries),
		experience:     ExperienceItems(experience.Entries),
		languages:      languages.Entries,
		certifications: certifications.Entries,
		volunteer:      volunteer.Entries,
	})
	return profile
}

type sections struct {
	interests      []string
	skills         []string
	education      []core.EducationItem
	experience     []core.ExperienceItem
	languages      []core.Entry
	certifications []core.Entry
	volunteer      []core.Entry
}

// embeddingText assembles the canonical multi-line text blob. Section order
// is fixed and significant: downstream free-text consumers (the message
// generator among them) parse it line by line, keyed on the labels.
func embeddingText(p *core.Profile, s sections) string {
	var parts []string
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, label+": "+value)
		}
	}

	add("Name", p.Name)
	add("Current Position", p.Position)
	if p.CurrentCompany != "" &&
		!strings.Contains(strings.ToLower(p.Position), strings.ToLower(p.CurrentCompany)) {
		add("Current Company", p.CurrentCompany)
	}
	add("Location", location(p.City, p.CountryCode))
	add("About", p.About)
	add("Interests", strings.Join(s.interests, ", "))
	add("Skills", strings.Join(s.skills, ", "))
	add("Education Details", renderEducation(s.education))
	add("Experience Details", renderExperience(s.experience, p.Position))
	add("Languages", strings.Join(NamedList(s.languages, "title", "name", "language"), ", "))
	add("Certifications", strings.Join(NamedList(s.certifications, "title", "name", "certification"), ", "))
	add("Volunteer", strings.Join(VolunteerLines(s.volunteer), " | "))

	return strings.Join(parts, "\n")
}

func location(city, countryCode string) string {
	switch {
	case city != "" && countryCode != "":
		return city + ", " + countryCode
	case city != "":
		return city
	default:
		return countryCode
	}
}

// dateSpan renders "(start–end)" with "?" for a missing endpoint, or ""
// when both are missing.
func dateSpan(start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	if start == "" {
		start = "?"
	}
	if end == "" {
		end = "?"
	}
	return "(" + start + "–" + end + ")"
}
