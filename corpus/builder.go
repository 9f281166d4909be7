package corpus

import (
	"log/slog"

	"github.com/brewsearch/brew/core"
	"github.com/brewsearch/brew/normalize"
)

// BuildProfiles normalizes every raw record, in input order, into the
// canonical profile set and its parallel embedding-text sequence.
//
// The build is best-effort by contract: a record missing its scalar fields
// still yields a profile with empty strings, and normalization itself never
// fails, so the output always has exactly one profile per input row.
func BuildProfiles(records []*core.RawRecord, logger *slog.Logger) ([]*core.Profile, []string) {
	if logger == nil {
		logger = slog.Default()
	}

	profiles := make([]*core.Profile, 0, len(records))
	texts := make([]string, 0, len(records))

	empty := 0
	for _, rec := range records {
		profile := normalize.Record(rec)
		if profile.Name == "" && profile.Position == "" {
			empty++
		}
		profiles = append(profiles, profile)
		texts = append(texts, profile.EmbeddingText)
	}

	if empty > 0 {
		logger.Warn("some records normalized with no name or position", "count", empty)
	}
	logger.Info("built profile corpus", "profiles", len(profiles))

	return profiles, texts
}

// Checksum derives the corpus content checksum from the embedding texts.
// It is recorded in the build metadata so a served corpus can be told apart
// from a stale or drifted rebuild.
func Checksum(texts []string) uint64 {
	var combined uint64
	for _, text := range texts {
		combined = combined*31 + core.Fingerprint(text)
	}
	return combined
}
