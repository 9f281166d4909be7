// Copyright 2025 Brew Search Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/brewsearch/brew/ai"
	"github.com/brewsearch/brew/ai/ollama"
	"github.com/brewsearch/brew/ai/openai"
	"github.com/brewsearch/brew/config"
)

func main() {
	app := &cli.App{
		Name:  "brew",
		Usage: "Semantic people search over normalized profile data",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Build the search corpus from a raw profile export",
				Action: buildCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Path to the raw profile CSV export",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "data-dir",
						Usage: "Directory for the built corpus artifacts",
						Value: "data",
					},
					&cli.StringFlag{
						Name:  "backend",
						Usage: "Embedding backend (openai, ollama)",
						Value: "openai",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key for remote embedding services",
						EnvVars: []string{"BREW_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of texts to embed per backend call",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Concurrent embedding batch calls (0 = NumCPU/2)",
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N profiles",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed batch calls",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serve search and message generation over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "data-dir",
						Usage: "Directory holding the built corpus artifacts",
					},
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
					},
					&cli.StringFlag{
						Name:  "backend",
						Usage: "Embedding backend (openai, ollama)",
						Value: "openai",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name (defaults to the model the corpus was built with)",
					},
					&cli.StringFlag{
						Name:  "generation-model",
						Usage: "Generation model for outreach messages (empty disables)",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key for remote services",
						EnvVars: []string{"BREW_API_KEY"},
					},
					&cli.StringFlag{
						Name:  "cache-dir",
						Usage: "Query-embedding cache directory (empty = in-memory)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newProvider selects the AI backend. The openai backend also serves
// any OpenAI-compatible endpoint; ollama talks the native Ollama API.
func newProvider(backend string, cfg *ai.Config) (ai.Provider, error) {
	switch backend {
	case "openai":
		return openai.NewProvider(cfg)
	case "ollama":
		return ollama.NewProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be openai or ollama", backend)
	}
}

// applyFlagOverrides pushes set CLI flags into the config layer, where
// they take precedence over BREW_ environment values.
func applyFlagOverrides(c *cli.Context, names ...string) {
	config.Init()
	for _, name := range names {
		if c.IsSet(name) {
			config.SetValue(name, c.String(name))
		}
	}
}

func setupLogger(c *cli.Context) error {
	config.Init()

	levelStr := config.GetLogLevel()
	if c.IsSet("log-level") {
		levelStr = c.String("log-level")
	}
	levelStr = strings.ToLower(levelStr)

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
