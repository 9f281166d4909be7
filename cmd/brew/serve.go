package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/cache"
	"github.com/brewsearch/brew/config"
	"github.com/brewsearch/brew/message"
	"github.com/brewsearch/brew/search"
	"github.com/brewsearch/brew/server"
	"github.com/brewsearch/brew/store"
)

func serveCommand(c *cli.Context) error {
	applyFlagOverrides(c,
		"data-dir", "addr", "embedding-host", "embedding-model",
		"generation-model", "api-key", "cache-dir")
	if c.IsSet("addr") {
		config.SetValue("listen-addr", c.String("addr"))
	}

	dataDir := config.GetDataDir()
	corpusData, err := store.Load(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load corpus from %s: %w", dataDir, err)
	}

	index, err := search.NewIndex(corpusData)
	if err != nil {
		return fmt.Errorf("failed to index corpus: %w", err)
	}
	slog.Info("corpus loaded",
		"dataDir", dataDir,
		"profiles", index.Len(),
		"dimension", index.Dimension(),
		"model", corpusData.Meta.ModelUsed)

	// Without an embedding host the service still answers profile
	// lookups; searches report the missing backend.
	var embedder ai.Embedder
	var generatorBackend ai.Generator
	embeddingModel := config.GetEmbeddingModel()
	if embeddingModel == "" {
		embeddingModel = corpusData.Meta.ModelUsed
	}
	if config.GetEmbeddingHost() != "" {
		aiConfig := ai.NewConfig(
			ai.WithEmbeddingHost(config.GetEmbeddingHost()),
			ai.WithEmbeddingModel(embeddingModel),
			ai.WithGenerationHost(config.GetGenerationHost()),
			ai.WithGenerationModel(config.GetGenerationModel()),
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

		embedder = provider.Embedder()
		generatorBackend = provider.Generator()
	} else {
		slog.Warn("no embedding host configured, search is disabled")
	}

	queryCache, err := cache.Open(config.GetCacheDir(), embeddingModel,
		cache.WithTTL(config.GetCacheTTL()))
	if err != nil {
		return fmt.Errorf("failed to open query cache: %w", err)
	}
	defer queryCache.Close()

	searcher, err := search.NewSearcher(index, embedder,
		search.WithCache(queryCache),
		search.WithMonitor(search.NewLogMonitor(slog.Default())))
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	generator, err := message.NewGenerator(generatorBackend)
	if err != nil {
		return fmt.Errorf("failed to create message generator: %w", err)
	}

	srv, err := server.New(searcher, generator,
		server.WithTimeout(config.GetRequestTimeout()))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Run(config.GetListenAddr())
}
