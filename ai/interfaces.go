package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// This is the live-query path: it must fail loudly rather than return
	// a degraded vector, since a silently wrong query vector corrupts
	// ranking.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in
	// one batch call. The returned slice has the same length and order as
	// the input.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Generator produces free text from a prompt. Used for templated outreach
// message generation; implementations must be thread-safe.
type Generator interface {
	// GenerateMessage returns one generated message for the prompt.
	GenerateMessage(ctx context.Context, prompt string) (string, error)
}

// Provider aggregates the AI services behind one construction point, so the
// embedding and generation backends share configuration and resources.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Generator returns the message generation service, or nil when no
	// generation model is configured.
	Generator() Generator

	// Close releases resources held by the provider and its services.
	Close() error
}
