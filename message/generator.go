package message

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/core"
)

// Generator produces outreach messages for profiles.
type Generator struct {
	backend ai.Generator
	logger  *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) error {
		if logger == nil {
			logger = slog.Default()
		}
		g.logger = logger
		return nil
	}
}

// NewGenerator creates a message generator. The backend may be nil when
// no generation model is configured; Generate then returns a
// configuration error.
func NewGenerator(backend ai.Generator, opts ...Option) (*Generator, error) {
	g := &Generator{
		backend: backend,
		logger:  slog.Default().With("component", "message"),
	}

	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Backend reports whether a generation backend is configured.
func (g *Generator) Backend() bool {
	return g.backend != nil
}

// Generate writes one outreach message to the profile in the given
// tone. Profile and sender context are required, and a profile with
// neither a name nor embedding text counts as missing; an unknown tone
// falls back to curious rather than erroring.
func (g *Generator) Generate(ctx context.Context, profile *core.Profile, tone Tone, senderContext string) (string, error) {
	if profile == nil || (profile.Name == "" && profile.EmbeddingText == "") {
		return "", ErrProfileRequired
	}
	if strings.TrimSpace(senderContext) == "" {
		return "", ErrSenderContextRequired
	}
	if g.backend == nil {
		return "", core.ErrBackendNotConfigured
	}

	prompt := BuildPrompt(profile, tone, senderContext)

	text, err := g.backend.GenerateMessage(ctx, prompt)
	if err != nil {
		g.logger.Error("error generating message", "profile", profile.Name, "tone", tone, "err", err)
		return "", fmt.Errorf("failed to generate message: %w", err)
	}

	return strings.TrimSpace(text), nil
}
