package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brewsearch/brew/core"
)

// Artifact file names inside a data directory.
const (
	ProfilesFile = "profiles.json"
	VectorsFile  = "vectors.mus"
	MetadataFile = "metadata.json"
)

// Metadata describes one corpus build.
type Metadata struct {
	NumProfiles        int    `json:"num_profiles"`
	EmbeddingDimension int    `json:"embedding_dimension"`
	ModelUsed          string `json:"model_used"`
	ProfilesFile       string `json:"profiles_file"`
	VectorsFile        string `json:"vectors_file"`
	CorpusChecksum     string `json:"corpus_checksum"`
}

// Corpus is a loaded build: ordered profiles, their vectors, and the build
// metadata. It is read-only after load.
type Corpus struct {
	Profiles []*core.Profile
	Vectors  [][]float32
	Meta     Metadata
}

// Save writes the three corpus artifacts into dir, creating it if needed.
func Save(dir string, profiles []*core.Profile, vectors [][]float32, meta Metadata) error {
	if len(profiles) != len(vectors) {
		return fmt.Errorf("%w: %d profiles, %d vectors", ErrCountMismatch, len(profiles), len(vectors))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	profileData, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode profiles: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ProfilesFile), profileData, 0o644); err != nil {
		return fmt.Errorf("failed to write profiles: %w", err)
	}

	vectorData, err := MarshalVectors(vectors)
	if err != nil {
		return fmt.Errorf("failed to encode vectors: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, VectorsFile), vectorData, 0o644); err != nil {
		return fmt.Errorf("failed to write vectors: %w", err)
	}

	meta.NumProfiles = len(profiles)
	meta.ProfilesFile = ProfilesFile
	meta.VectorsFile = VectorsFile
	metaData, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetadataFile), metaData, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}

// Load reads a corpus from dir and cross-checks the artifacts: profile and
// vector counts must agree with each other and with the metadata, and every
// vector must carry the recorded dimension. Any disagreement fails the load.
func Load(dir string) (*Corpus, error) {
	profileData, err := os.ReadFile(filepath.Join(dir, ProfilesFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}
	var profiles []*core.Profile
	if err := json.Unmarshal(profileData, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	vectorData, err := os.ReadFile(filepath.Join(dir, VectorsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read vectors: %w", err)
	}
	vectors, err := UnmarshalVectors(vectorData)
	if err != nil {
		return nil, err
	}

	metaData, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	var meta Metadata
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}

	if len(profiles) != len(vectors) {
		return nil, fmt.Errorf("%w: %d profiles, %d vectors", ErrCountMismatch, len(profiles), len(vectors))
	}
	if meta.NumProfiles != len(profiles) {
		return nil, fmt.Errorf("%w: metadata records %d profiles, found %d",
			ErrCountMismatch, meta.NumProfiles, len(profiles))
	}
	for i, vec := range vectors {
		if len(vec) != meta.EmbeddingDimension {
			return nil, fmt.Errorf("%w: vector %d has length %d, metadata records %d",
				core.ErrDimensionMismatch, i, len(vec), meta.EmbeddingDimension)
		}
	}

	return &Corpus{Profiles: profiles, Vectors: vectors, Meta: meta}, nil
}
