package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/core"
)

// Result is one search hit: the matched profile, its cosine similarity
// to the query, and its corpus position.
type Result struct {
	Profile *core.Profile
	Score   float64
	Index   int
}

// VectorCache caches query embeddings. Implementations are best-effort;
// a miss on error is acceptable, a stale vector is not.
type VectorCache interface {
	Get(query string) ([]float32, bool)
	Put(query string, vector []float32)
}

// Searcher ranks corpus profiles against live queries.
type Searcher struct {
	index    *Index
	embedder ai.Embedder
	cache    VectorCache
	monitor  SearchMonitor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithCache sets a query-embedding cache consulted before the backend.
func WithCache(cache VectorCache) Option {
	return func(s *Searcher) error {
		s.cache = cache
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each search stage.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher. The embedder may be nil when no
// backend is configured; searches then fail with a configuration error
// instead of a wrong answer.
func NewSearcher(index *Index, embedder ai.Embedder, opts ...Option) (*Searcher, error) {
	if index == nil {
		return nil, ErrIndexRequired
	}

	s := &Searcher{
		index:    index,
		embedder: embedder,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Index returns the searcher's corpus index.
func (s *Searcher) Index() *Index {
	return s.index
}

// Backend reports whether an embedding backend is configured.
func (s *Searcher) Backend() bool {
	return s.embedder != nil
}

// Search returns the top k profiles for query, ranked by cosine
// similarity descending with ties broken by ascending corpus position.
// k values outside [1, corpus size] clamp to the corpus size. An empty
// query is rejected before any backend call, and an empty corpus
// returns empty results without one.
func (s *Searcher) Search(ctx context.Context, query string, k int) ([]*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.ErrEmptyQuery
	}

	s.monitor.Start(query)

	if s.index.Len() == 0 {
		results := []*Result{}
		s.monitor.Finish(results)
		return results, nil
	}

	vector, err := s.embedQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	s.monitor.AfterQueryEmbedding(len(vector))

	results := make([]*Result, 0, s.index.Len())
	for i, corpusVec := range s.index.vectors {
		results = append(results, &Result{
			Profile: s.index.profiles[i],
			Score:   CosineSimilarity(vector, corpusVec),
			Index:   i,
		})
	}

	// Stable sort keeps equal scores in ascending corpus order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if k <= 0 || k > len(results) {
		k = len(results)
	}
	results = results[:k]

	s.monitor.Finish(results)
	return results, nil
}

// embedQuery resolves the query vector, consulting the cache first. The
// zero-vector fallback of corpus builds is forbidden here; a missing or
// failing backend is an error the caller must see.
func (s *Searcher) embedQuery(ctx context.Context, query string) ([]float32, error) {
	if s.cache != nil {
		if vector, ok := s.cache.Get(query); ok {
			// A cached vector from before a corpus rebuild can carry the
			// old dimension; it must not reach scoring.
			if s.index.Dimension() == 0 || len(vector) == s.index.Dimension() {
				s.monitor.CacheHit(query)
				return vector, nil
			}
			s.logger.Warn("discarding cached query vector with stale dimension",
				"cached", len(vector), "corpus", s.index.Dimension())
		}
	}

	if s.embedder == nil {
		return nil, core.ErrBackendNotConfigured
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if s.index.Dimension() > 0 && len(vector) != s.index.Dimension() {
		return nil, fmt.Errorf("%w: query vector has length %d, corpus dimension is %d",
			core.ErrDimensionMismatch, len(vector), s.index.Dimension())
	}

	if s.cache != nil {
		s.cache.Put(query, vector)
	}

	return vector, nil
}
