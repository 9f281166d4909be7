package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/config"
	"github.com/brewsearch/brew/corpus"
	"github.com/brewsearch/brew/store"
)

func buildCommand(c *cli.Context) error {
	ctx := context.Background()
	applyFlagOverrides(c,
		"data-dir", "embedding-host", "embedding-model", "api-key",
		"batch-size", "pool-size", "report-interval")

	input, err := os.Open(c.String("input"))
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer input.Close()

	records, err := corpus.ReadRecords(input)
	if err != nil {
		return fmt.Errorf("failed to read records: %w", err)
	}

	// Precedence is flag, then BREW_ env, then the flag default.
	embeddingHost := config.GetEmbeddingHost()
	if embeddingHost == "" {
		embeddingHost = c.String("embedding-host")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(embeddingHost),
		ai.WithEmbeddingModel(config.GetEmbeddingModel()),
		ai.WithAPIKey(config.GetAPIKey()),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	provider, err := newProvider(c.String("backend"), aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create AI provider: %w", err)
	}
	defer provider.Close()

	profiles, texts := corpus.BuildProfiles(records, nil)

	tracker := corpus.NewProgressTracker(os.Stderr, len(texts), config.GetReportInterval())
	generator, err := corpus.NewGenerator(provider.Embedder(),
		corpus.WithBatchSize(config.GetBatchSize()),
		corpus.WithPoolSize(config.GetPoolSize()),
		corpus.WithRetry(c.Int("max-retries"), c.Duration("retry-delay")),
		corpus.WithProgress(tracker.Update),
	)
	if err != nil {
		return fmt.Errorf("failed to create embedding generator: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Input: %s (%d records)\n", c.String("input"), len(records))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", aiConfig.EmbeddingHost)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", aiConfig.EmbeddingModel)
	fmt.Fprintln(os.Stderr)

	tracker.Start()
	vectors, dim, err := generator.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}
	tracker.Finish()

	meta := store.Metadata{
		EmbeddingDimension: dim,
		ModelUsed:          aiConfig.EmbeddingModel,
		CorpusChecksum:     fmt.Sprintf("%016x", corpus.Checksum(texts)),
	}

	dataDir := config.GetDataDir()
	if err := store.Save(dataDir, profiles, vectors, meta); err != nil {
		return fmt.Errorf("failed to save corpus: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Built corpus of %d profiles (dimension %d) in %s, took %s\n",
		len(profiles), dim, dataDir, tracker.Elapsed().Round(time.Second))

	return nil
}
