package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewsearch/brew/ai/mock"
	"github.com/brewsearch/brew/core"
)

// mapCache is an in-memory VectorCache for tests.
type mapCache struct {
	entries map[string][]float32
	puts    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]float32)}
}

func (m *mapCache) Get(query string) ([]float32, bool) {
	v, ok := m.entries[query]
	return v, ok
}

func (m *mapCache) Put(query string, vector []float32) {
	m.entries[query] = vector
	m.puts++
}

// recordingMonitor captures the stages a search passes through.
type recordingMonitor struct {
	started   bool
	cacheHits int
	dimension int
	finished  int
}

func (r *recordingMonitor) Start(_ string)              { r.started = true }
func (r *recordingMonitor) CacheHit(_ string)           { r.cacheHits++ }
func (r *recordingMonitor) AfterQueryEmbedding(dim int) { r.dimension = dim }
func (r *recordingMonitor) Finish(results []*Result)    { r.finished = len(results) }

func fixedEmbedder(vector []float32) *mock.MockEmbedder {
	e := mock.NewMockEmbedder()
	e.EmbedTextFunc = func(_ context.Context, _ string) ([]float32, error) {
		return vector, nil
	}
	return e
}

func TestSearchRanking(t *testing.T) {
	// Corpus order deliberately not score order.
	ix, err := NewIndex(testCorpus([][]float32{
		{0, 1, 0},   // orthogonal to query
		{1, 0, 0},   // exact match
		{1, 1, 0},   // partial match
		{-1, 0, 0},  // opposite
		{0.5, 0, 0}, // exact direction, smaller magnitude
	}))
	require.NoError(t, err)

	s, err := NewSearcher(ix, fixedEmbedder([]float32{1, 0, 0}))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "query", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Cosine ignores magnitude, so positions 1 and 4 tie at 1.0 and
	// keep ascending corpus order.
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, 4, results[1].Index)
	assert.Equal(t, 2, results[2].Index)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9)
	assert.InDelta(t, 1.0, results[1].Score, 1e-9)
	assert.Equal(t, "Person 1", results[0].Profile.Name)
}

func TestSearchClampsK(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	s, err := NewSearcher(ix, fixedEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	for _, k := range []int{0, -5, 100} {
		results, err := s.Search(context.Background(), "query", k)
		require.NoError(t, err)
		assert.Len(t, results, 2, "k=%d", k)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}}))
	require.NoError(t, err)

	embedder := mock.NewMockEmbedder()
	s, err := NewSearcher(ix, embedder)
	require.NoError(t, err)

	for _, query := range []string{"", "   ", "\t\n"} {
		_, err := s.Search(context.Background(), query, 5)
		assert.ErrorIs(t, err, core.ErrEmptyQuery)
	}
	assert.Equal(t, 0, embedder.CallCount(), "empty query must be rejected before the backend")
}

func TestSearchEmptyCorpusNeedsNoBackend(t *testing.T) {
	ix, err := NewIndex(testCorpus(nil))
	require.NoError(t, err)

	s, err := NewSearcher(ix, nil)
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchNoBackend(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}}))
	require.NoError(t, err)

	s, err := NewSearcher(ix, nil)
	require.NoError(t, err)
	assert.False(t, s.Backend())

	_, err = s.Search(context.Background(), "query", 5)
	assert.ErrorIs(t, err, core.ErrBackendNotConfigured)
}

func TestSearchDimensionMismatch(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0, 0}}))
	require.NoError(t, err)

	s, err := NewSearcher(ix, fixedEmbedder([]float32{1, 0}))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "query", 5)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch)
}

func TestSearchUsesCache(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	cache := newMapCache()
	cache.entries["warm query"] = []float32{0, 1}

	embedder := mock.NewMockEmbedder()
	monitor := &recordingMonitor{}
	s, err := NewSearcher(ix, embedder, WithCache(cache), WithMonitor(monitor))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "warm query", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Index)
	assert.Equal(t, 0, embedder.CallCount(), "cache hit must skip the backend")
	assert.Equal(t, 1, monitor.cacheHits)
}

func TestSearchRefreshesStaleCachedVector(t *testing.T) {
	// A cache surviving a corpus rebuild can hold vectors of the old
	// dimension. Those must be re-embedded, not scored.
	ix, err := NewIndex(testCorpus([][]float32{{1, 0, 0}, {0, 1, 0}}))
	require.NoError(t, err)

	cache := newMapCache()
	cache.entries["warm query"] = []float32{1, 0} // pre-rebuild dimension

	embedder := fixedEmbedder([]float32{0, 1, 0})
	monitor := &recordingMonitor{}
	s, err := NewSearcher(ix, embedder, WithCache(cache), WithMonitor(monitor))
	require.NoError(t, err)

	results, err := s.Search(context.Background(), "warm query", 1)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 1, results[0].Index)
	assert.InDelta(t, 1.0, results[0].Score, 1e-9, "scores must come from the fresh vector")
	assert.Equal(t, 1, embedder.CallCount(), "stale dimension is a miss, not a hit")
	assert.Equal(t, 0, monitor.cacheHits)
	assert.Equal(t, []float32{0, 1, 0}, cache.entries["warm query"], "fresh vector replaces the stale one")
}

func TestSearchStaleCachedVectorWithoutBackend(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0, 0}}))
	require.NoError(t, err)

	cache := newMapCache()
	cache.entries["warm query"] = []float32{1, 0}

	s, err := NewSearcher(ix, nil, WithCache(cache))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "warm query", 1)
	assert.ErrorIs(t, err, core.ErrBackendNotConfigured)
}

func TestSearchFillsCacheOnMiss(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}}))
	require.NoError(t, err)

	cache := newMapCache()
	s, err := NewSearcher(ix, fixedEmbedder([]float32{1, 0}), WithCache(cache))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "cold query", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, []float32{1, 0}, cache.entries["cold query"])
}

func TestSearchMonitorStages(t *testing.T) {
	ix, err := NewIndex(testCorpus([][]float32{{1, 0}, {0, 1}}))
	require.NoError(t, err)

	monitor := &recordingMonitor{}
	s, err := NewSearcher(ix, fixedEmbedder([]float32{1, 0}), WithMonitor(monitor))
	require.NoError(t, err)

	_, err = s.Search(context.Background(), "query", 2)
	require.NoError(t, err)

	assert.True(t, monitor.started)
	assert.Equal(t, 2, monitor.dimension)
	assert.Equal(t, 2, monitor.finished)
}

func TestNewSearcherRequiresIndex(t *testing.T) {
	_, err := NewSearcher(nil, mock.NewMockEmbedder())
	require.ErrorIs(t, err, ErrIndexRequired)
}
