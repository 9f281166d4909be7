package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/core"
)

func sampleCorpus() ([]*core.Profile, [][]float32, Metadata) {
	profiles := []*core.Profile{
		{Name: "Ada Lovelace", EmbeddingText: "Name: Ada Lovelace"},
		{Name: "Alan Turing", EmbeddingText: "Name: Alan Turing"},
	}
	vectors := [][]float32{
		{0.1, 0.2, 0.3},
		{-0.4, 0.5, 0.6},
	}
	meta := Metadata{
		EmbeddingDimension: 3,
		ModelUsed:          "all-minilm",
		CorpusChecksum:     "00000000deadbeef",
	}
	return profiles, vectors, meta
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	profiles, vectors, meta := sampleCorpus()

	require.NoError(t, Save(dir, profiles, vectors, meta))

	corpus, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, profiles, corpus.Profiles)
	assert.Equal(t, vectors, corpus.Vectors)
	assert.Equal(t, 2, corpus.Meta.NumProfiles)
	assert.Equal(t, "all-minilm", corpus.Meta.ModelUsed)
	assert.Equal(t, "00000000deadbeef", corpus.Meta.CorpusChecksum)
	assert.Equal(t, ProfilesFile, corpus.Meta.ProfilesFile)
	assert.Equal(t, VectorsFile, corpus.Meta.VectorsFile)
}

func TestSaveCountMismatch(t *testing.T) {
	profiles, vectors, meta := sampleCorpus()

	err := Save(t.TempDir(), profiles, vectors[:1], meta)
	require.ErrorIs(t, err, ErrCountMismatch)
}

func TestLoadRejectsTamperedMetadata(t *testing.T) {
	dir := t.TempDir()
	profiles, vectors, meta := sampleCorpus()
	require.NoError(t, Save(dir, profiles, vectors, meta))

	metaPath := filepath.Join(dir, MetadataFile)
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"num_profiles": 99, "embedding_dimension": 3}`), 0o644))

	_, err := Load(dir)
	require.ErrorIs(t, err, ErrCountMismatch)
}

func TestLoadRejectsWrongDimension(t *testing.T) {
	dir := t.TempDir()
	profiles, vectors, meta := sampleCorpus()
	meta.EmbeddingDimension = 5 // metadata lies about the vectors

	require.NoError(t, Save(dir, profiles, vectors, meta))

	_, err := Load(dir)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestMarshalVectorsRoundTrip(t *testing.T) {
	vectors := [][]float32{
		{1.5, -2.25, 0},
		{3.125, 4, -0.001},
	}

	data, err := MarshalVectors(vectors)
	require.NoError(t, err)

	got, err := UnmarshalVectors(data)
	require.NoError(t, err)
	assert.Equal(t, vectors, got)
}

func TestMarshalVectorsEmpty(t *testing.T) {
	data, err := MarshalVectors(nil)
	require.NoError(t, err)

	got, err := UnmarshalVectors(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMarshalVectorsRagged(t *testing.T) {
	_, err := MarshalVectors([][]float32{{1, 2}, {1, 2, 3}})
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestUnmarshalVectorsCorrupt(t *testing.T) {
	data, err := MarshalVectors([][]float32{{1, 2, 3}})
	require.NoError(t, err)

	_, err = UnmarshalVectors(data[:len(data)-2])
	require.ErrorIs(t, err, ErrCorruptVectors)
}
