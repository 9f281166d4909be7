package message

import (
	"fmt"
	"strings"

	"github.com/brewsearch/brew/core"
)

// Tone selects the voice of the generated message.
type Tone string

const (
	ToneCurious       Tone = "curious"
	ToneNetworking    Tone = "networking"
	ToneCollaborative Tone = "collaborative"
	ToneCasual        Tone = "casual"
)

// Per-section character limits for the profile context block. Long
// sections are cut so the prompt stays within the model's attention.
const (
	maxAboutChars   = 150
	maxDetailChars  = 200
	maxListChars    = 150
	fallbackAddress = "there"
)

var toneInstructions = map[Tone]string{
	ToneCurious: "Write a natural, conversational LinkedIn message to %s. " +
		"Be genuine and mention something specific from their background that caught your attention. " +
		"Keep it casual and under 80 words. Don't be overly formal or use corporate speak.",
	ToneNetworking: "Write a professional but friendly LinkedIn message to %s. " +
		"Find a genuine connection point in their background and introduce yourself naturally. " +
		"Keep it under 80 words. Avoid buzzwords and be authentic.",
	ToneCollaborative: "Write a LinkedIn message to %s about potential collaboration. " +
		"Be specific about what you'd like to work on together based on their experience. " +
		"Keep it under 80 words and be direct but friendly.",
	ToneCasual: "Write a relaxed, friendly LinkedIn message to %s. " +
		"Be warm and mention something relatable from their background. " +
		"Keep it under 80 words. Sound like a real person, not a robot.",
}

// profileContext is the rich detail recovered from a profile's
// embedding text, one field per labelled line.
type profileContext struct {
	education      string
	experience     string
	skills         string
	languages      string
	certifications string
	interests      string
	volunteer      string
}

// parseEmbeddingText recovers per-section detail from the labelled
// lines of a profile's embedding text.
func parseEmbeddingText(text string) profileContext {
	var pc profileContext

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "Education Details: "):
			pc.education = strings.TrimPrefix(line, "Education Details: ")
		case strings.HasPrefix(line, "Experience Details: "):
			pc.experience = strings.TrimPrefix(line, "Experience Details: ")
		case strings.HasPrefix(line, "Skills: "):
			pc.skills = strings.TrimPrefix(line, "Skills: ")
		case strings.HasPrefix(line, "Languages: "):
			pc.languages = strings.TrimPrefix(line, "Languages: ")
		case strings.HasPrefix(line, "Certifications: "):
			pc.certifications = strings.TrimPrefix(line, "Certifications: ")
		case strings.HasPrefix(line, "Interests: "):
			pc.interests = strings.TrimPrefix(line, "Interests: ")
		case strings.HasPrefix(line, "Volunteer: "):
			pc.volunteer = strings.TrimPrefix(line, "Volunteer: ")
		}
	}

	return pc
}

// truncate cuts s to at most max runes and marks the cut with an
// ellipsis. The ellipsis is always appended so the model reads the
// section as an excerpt, not a complete record.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}

// BuildPrompt assembles the full generation prompt for one profile.
// An unknown tone falls back to curious.
func BuildPrompt(profile *core.Profile, tone Tone, senderContext string) string {
	name := profile.Name
	if name == "" {
		name = fallbackAddress
	}

	instruction, ok := toneInstructions[tone]
	if !ok {
		instruction = toneInstructions[ToneCurious]
	}
	instruction = fmt.Sprintf(instruction, name)

	pc := parseEmbeddingText(profile.EmbeddingText)

	parts := []string{"Person's name: " + name}
	if profile.Position != "" {
		parts = append(parts, "Current position: "+profile.Position)
	}
	if profile.CurrentCompany != "" {
		parts = append(parts, "Current company: "+profile.CurrentCompany)
	}
	if profile.About != "" {
		parts = append(parts, "About: "+truncate(profile.About, maxAboutChars))
	}
	if pc.education != "" {
		parts = append(parts, "Education: "+truncate(pc.education, maxDetailChars))
	}
	if pc.experience != "" {
		parts = append(parts, "Experience: "+truncate(pc.experience, maxDetailChars))
	}
	if pc.skills != "" {
		parts = append(parts, "Skills: "+truncate(pc.skills, maxListChars))
	}
	if pc.interests != "" {
		parts = append(parts, "Interests: "+truncate(pc.interests, maxListChars))
	}
	if pc.languages != "" {
		parts = append(parts, "Languages: "+pc.languages)
	}
	if pc.certifications != "" {
		parts = append(parts, "Certifications: "+truncate(pc.certifications, maxListChars))
	}
	if pc.volunteer != "" {
		parts = append(parts, "Volunteer: "+pc.volunteer)
	}

	return instruction +
		"\n\nProfile context:\n" + strings.Join(parts, "\n") +
		"\n\nAbout you (the sender): " + senderContext +
		"\n\nMessage:"
}
