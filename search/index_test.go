package search

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/core"
	"github.com/brewsearch/brew/store"
)

func testCorpus(vectors [][]float32) *store.Corpus {
	profiles := make([]*core.Profile, len(vectors))
	for i := range vectors {
		profiles[i] = &core.Profile{
			Name:          fmt.Sprintf("Person %d", i),
			EmbeddingText: fmt.Sprintf("Name: Person %d", i),
		}
	}
	dim := 0
	if len(vectors) > 0 {
		dim = len(vectors[0])
	}
	return &store.Corpus{
		Profiles: profiles,
		Vectors:  vectors,
		Meta: store.Metadata{
			NumProfiles:        len(profiles),
			EmbeddingDimension: dim,
			ModelUsed:          "test-model",
		},
	}
}

func TestNewIndex(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, 2, ix.Dimension())
	assert.Equal(t, "test-model", ix.Meta().ModelUsed)
}

func TestNewIndexNilCorpus(t *testing.T) {
	_, err := NewIndex(nil)
	require.ErrorIs(t, err, ErrIndexRequired)
}

func TestNewIndexCountMismatch(t *testing.T) {
	corpus := testCorpus([][]float32{{1, 0}, {0, 1}})
	corpus.Vectors = corpus.Vectors[:1]

	_, err := NewIndex(corpus)
	require.ErrorIs(t, err, store.ErrCountMismatch)
}

func TestNewIndexRaggedVectors(t *testing.T) {
	corpus := testCorpus([][]float32{{1, 0}, {0, 1}})
	corpus.Vectors[1] = []float32{0, 1, 0}

	_, err := NewIndex(corpus)
	require.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestIndexProfile(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	p, err := ix.Profile(1)
	require.NoError(t, err)
	assert.Equal(t, "Person 1", p.Name)

	_, err = ix.Profile(2)
	assert.ErrorIs(t, err, core.ErrProfileNotFound)

	_, err = ix.Profile(-1)
	assert.ErrorIs(t, err, core.ErrProfileNotFound)
}

func TestIndexEmptyCorpus(t *testing.T) {
	ix, err := NewIndex(testCorpus(nil))
	require.NoError(t, err)

	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, ix.Dimension())
}
