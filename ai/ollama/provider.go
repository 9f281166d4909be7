package ollama

import (
	"context"
	"log/slog"
	"strings"

	"github.com/brewsearch/brew/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// Provider implements ai.Provider using a local Ollama server.
type Provider struct {
	config    *ai.Config
	embedder  *Embedder
	generator *generator
	logger    *slog.Logger
}

// NewProvider creates a new AI provider backed by a local Ollama server.
// The generator is only created when a generation model is configured.
//
// Returns ai.Provider interface to enforce abstraction.
func NewProvider(config *ai.Config) (ai.Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}

	var gen *generator
	if config.GenerationModel != "" {
		gen, err = newGenerator(config)
		if err != nil {
			return nil, err
		}
	}

	return &Provider{
		config:    config,
		embedder:  embedder,
		generator: gen,
		logger:    slog.Default().With("component", "ollama-provider"),
	}, nil
}

// Embedder returns the text embedding service.
func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

// Generator returns the message generation service, or nil when no
// generation model is configured.
func (p *Provider) Generator() ai.Generator {
	if p.generator == nil {
		return nil
	}
	return p.generator
}

// Close releases resources held by the provider.
func (p *Provider) Close() error {
	p.logger.Debug("closing Ollama provider")
	return nil
}

// generator implements ai.Generator over a local Ollama chat model.
type generator struct {
	client llms.Model
	logger *slog.Logger
}

func newGenerator(config *ai.Config) (*generator, error) {
	host := strings.TrimSuffix(config.GenerationHost, "/v1")

	client, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	return &generator{
		client: client,
		logger: slog.Default().With("component", "ollama-generator"),
	}, nil
}

// GenerateMessage produces one generated message for the prompt.
func (g *generator) GenerateMessage(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug("generating message", "promptLength", len(prompt))

	response, err := llms.GenerateFromSinglePrompt(ctx, g.client, prompt,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(150))
	if err != nil {
		g.logger.Error("failed to generate message", "err", err)
		return "", err
	}

	return strings.TrimSpace(response), nil
}
