package corpus

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/core"
	"github.com/panjf2000/ants/v2"
)

// DefaultBatchSize is the number of texts sent per backend call, sized to
// stay under typical provider request limits.
const DefaultBatchSize = 100

// BatchResult is the outcome of embedding one batch. A batch either
// succeeded with real vectors or degraded to zero vectors, in which case
// Err carries the cause. Degradation is explicit rather than swallowed so
// the build can report how much of the corpus is searchable.
type BatchResult struct {
	Batch    int
	Vectors  [][]float32
	Err      error
	Degraded bool
}

// Generator converts embedding texts to vectors in parallel batches.
// Batches are isolated from one another: a failing backend call degrades
// its own batch to zero vectors and the rest of the run is unaffected.
type Generator struct {
	embedder   ai.Embedder
	batchSize  int
	poolSize   int
	maxRetries int
	retryDelay time.Duration
	progress   func(done int)
	logger     *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithBatchSize sets the number of texts per backend call.
func WithBatchSize(size int) GeneratorOption {
	return func(g *Generator) {
		if size > 0 {
			g.batchSize = size
		}
	}
}

// WithPoolSize sets the worker pool size for concurrent batch calls.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) GeneratorOption {
	return func(g *Generator) {
		if size > 0 {
			g.poolSize = size
		}
	}
}

// WithRetry sets the retry policy applied to each batch call before it
// degrades to zero vectors.
func WithRetry(maxRetries int, baseDelay time.Duration) GeneratorOption {
	return func(g *Generator) {
		if maxRetries > 0 {
			g.maxRetries = maxRetries
		}
		if baseDelay > 0 {
			g.retryDelay = baseDelay
		}
	}
}

// WithProgress sets a callback invoked with the running count of texts
// processed as batches complete. Callbacks may arrive from pool workers
// concurrently with each other.
func WithProgress(fn func(done int)) GeneratorOption {
	return func(g *Generator) {
		g.progress = fn
	}
}

// WithGeneratorLogger sets a custom logger.
// Default is slog.Default().
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates an embedding generator over the given backend.
func NewGenerator(embedder ai.Embedder, opts ...GeneratorOption) (*Generator, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	g := &Generator{
		embedder:   embedder,
		batchSize:  DefaultBatchSize,
		poolSize:   poolSize,
		maxRetries: 3,
		retryDelay: 1 * time.Second,
		logger:     slog.Default().With("component", "embedding-generator"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Embed converts texts to vectors, preserving input order, and returns the
// vectors together with the embedding dimension. Failed batches are
// substituted with zero vectors of the corpus dimension; only total
// failure (no batch succeeded, dimension unknowable) is an error.
func (g *Generator) Embed(ctx context.Context, texts []string) ([][]float32, int, error) {
	if len(texts) == 0 {
		return [][]float32{}, 0, nil
	}

	results, err := g.embedBatches(ctx, texts)
	if err != nil {
		return nil, 0, err
	}

	// The dimension is fixed by the first successful batch; every vector
	// in the run must agree with it.
	dim := 0
	for _, res := range results {
		if res.Degraded {
			continue
		}
		for _, vec := range res.Vectors {
			if dim == 0 {
				dim = len(vec)
			}
			if len(vec) != dim {
				return nil, 0, fmt.Errorf("%w: batch %d returned length %d, want %d",
					core.ErrDimensionMismatch, res.Batch, len(vec), dim)
			}
		}
	}
	if dim == 0 {
		return nil, 0, ErrNoVectors
	}

	vectors := make([][]float32, 0, len(texts))
	degraded := 0
	for _, res := range results {
		if res.Degraded {
			g.logger.Warn("batch degraded to zero vectors",
				"batch", res.Batch, "texts", len(res.Vectors), "cause", res.Err)
			for range res.Vectors {
				vectors = append(vectors, make([]float32, dim))
			}
			degraded += len(res.Vectors)
			continue
		}
		vectors = append(vectors, res.Vectors...)
	}

	g.logger.Info("embedding run complete",
		"texts", len(texts), "dimension", dim, "degraded", degraded)

	return vectors, dim, nil
}

// embedBatches runs the batch calls on a worker pool and returns results
// ordered by batch index.
func (g *Generator) embedBatches(ctx context.Context, texts []string) ([]BatchResult, error) {
	batchCount := (len(texts) + g.batchSize - 1) / g.batchSize
	results := make([]BatchResult, batchCount)

	pool, err := ants.NewPool(g.poolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var done atomic.Int64
	for b := 0; b < batchCount; b++ {
		start := b * g.batchSize
		end := start + g.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]
		index := b

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[index] = g.embedBatch(ctx, index, batch)
			if g.progress != nil {
				g.progress(int(done.Add(int64(len(batch)))))
			}
		})
		if submitErr != nil {
			wg.Done()
			results[index] = BatchResult{
				Batch:    index,
				Vectors:  make([][]float32, len(batch)),
				Err:      submitErr,
				Degraded: true,
			}
		}
	}
	wg.Wait()

	return results, nil
}

// embedBatch calls the backend for one batch with retry. On exhausted
// retries or a count mismatch the batch degrades: the result carries one
// placeholder per input text and the failure cause.
func (g *Generator) embedBatch(ctx context.Context, index int, batch []string) BatchResult {
	var vectors [][]float32
	policy := backoff{attempts: g.maxRetries, base: g.retryDelay, logger: g.logger}
	err := policy.run(ctx, func() error {
		var embedErr error
		vectors, embedErr = g.embedder.EmbedTexts(ctx, batch)
		return embedErr
	})

	if err == nil && len(vectors) != len(batch) {
		err = fmt.Errorf("embedding result mismatch: expected %d, received %d",
			len(batch), len(vectors))
	}

	if err != nil {
		return BatchResult{
			Batch:    index,
			Vectors:  make([][]float32, len(batch)),
			Err:      err,
			Degraded: true,
		}
	}

	return BatchResult{Batch: index, Vectors: vectors}
}
