package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// skillPattern matches known skill keywords with word boundaries. C++ and C#
// sit outside the bounded group because their trailing symbol defeats \b.
var skillPattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join([]string{
	`python|java|javascript|typescript|go|rust|ruby|php`,
	`react|vue|angular|svelte|next\.js|node|express`,
	`sql|nosql|postgres|mysql|sqlite|mongo(?:db)?`,
	`aws|azure|gcp|google cloud|cloudflare`,
	`docker|kubernetes|terraform|ansible|ci/cd|jenkins|github actions`,
	`tensorflow|pytorch|scikit-learn|sklearn|pandas|numpy|matplotlib|seaborn|xgboost|lightgbm`,
	`nlp|computer vision|deep learning|machine learning|data science|analytics|statistics`,
	`spark|hadoop|airflow|dbt|snowflake|databricks|kafka`,
	`tableau|power bi|looker|metabase|excel|google sheets`,
	`git|jira|confluence|figma|adobe xd|photoshop|illustrator`,
	`product management|project management|agile|scrum|kanban`,
	`marketing|seo|sem|content marketing|email marketing|salesforce|hubspot`,
	`finance|accounting|financial modeling|sas|stata|r language|r programming`,
}, "|") + `)\b|c\+\+|c#`)

// canonicalSkills maps lowercase surface forms to their fixed display form.
// Anything not listed here is title-cased.
var canonicalSkills = map[string]string{
	"sql": "SQL", "nosql": "NoSQL", "aws": "AWS", "gcp": "GCP",
	"ci/cd": "CI/CD", "nlp": "NLP", "ai": "AI", "ui": "UI", "ux": "UX",
	"git": "Git", "c++": "C++", "c#": "C#", "dbt": "dbt",
}

// interestPatterns group domain and specialization phrases. Declaration
// order is significant: extracted interests are de-duplicated in pattern
// order, then match order, so output is deterministic across runs.
var interestPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:fintech|financial technology|banking|finance|investment|trading|cryptocurrency|blockchain)\b`),
	regexp.MustCompile(`(?i)\b(?:cogsci|cognitive science|psychology|neuroscience|brain|mental|cognitive)\b`),
	regexp.MustCompile(`(?i)\b(?:startup|entrepreneur|founder|co-founder|venture|innovation)\b`),
	regexp.MustCompile(`(?i)\b(?:machine learning|ai|artificial intelligence|data science|analytics|statistics)\b`),
	regexp.MustCompile(`(?i)\b(?:design|ui|ux|user experience|user interface|product design|graphic design)\b`),
	regexp.MustCompile(`(?i)\b(?:marketing|branding|advertising|social media|content|digital marketing)\b`),
	regexp.MustCompile(`(?i)\b(?:healthcare|medical|pharmaceutical|biotech|research|clinical|medicine)\b`),
	regexp.MustCompile(`(?i)\b(?:education|teaching|training|academic|curriculum|learning)\b`),
	regexp.MustCompile(`(?i)\b(?:sustainability|environment|climate|green|renewable|energy)\b`),
	regexp.MustCompile(`(?i)\b(?:gaming|game development|entertainment|media|content creation)\b`),
}

// ExtractSkills heuristically extracts skills from free text. Matches are
// taken in text order, first occurrence wins per canonical key, and the
// first-seen order is preserved in the output.
func ExtractSkills(text string) []string {
	if text == "" {
		return nil
	}

	matches := skillPattern.FindAllString(text, -1)
	seen := make(map[string]bool, len(matches))
	skills := make([]string, 0, len(matches))
	for _, m := range matches {
		val := canonicalSkill(strings.TrimSpace(m))
		key := strings.ToLower(val)
		if key != "" && !seen[key] {
			seen[key] = true
			skills = append(skills, val)
		}
	}
	return skills
}

// ExtractInterests extracts interest and specialization phrases from free
// text. Duplicates across patterns collapse onto the earliest match.
func ExtractInterests(text string) []string {
	if text == "" {
		return nil
	}

	type hit struct {
		pattern int
		offset  int
		surface string
	}

	var hits []hit
	seen := make(map[string]bool)
	for i, re := range interestPatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			surface := text[loc[0]:loc[1]]
			key := strings.ToLower(surface)
			if seen[key] {
				continue
			}
			seen[key] = true
			hits = append(hits, hit{pattern: i, offset: loc[0], surface: surface})
		}
	}

	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].pattern != hits[b].pattern {
			return hits[a].pattern < hits[b].pattern
		}
		return hits[a].offset < hits[b].offset
	})

	interests := make([]string, 0, len(hits))
	for _, h := range hits {
		interests = append(interests, h.surface)
	}
	return interests
}

func canonicalSkill(match string) string {
	if display, ok := canonicalSkills[strings.ToLower(match)]; ok {
		return display
	}
	return titleCase(match)
}

// titleCase capitalizes the first letter of every letter run and lowers the
// rest, so "machine learning" becomes "Machine Learning" and "scikit-learn"
// becomes "Scikit-Learn".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
