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


// Package ai provides abstractions for the AI backends used in Brew.
//
// This package defines interfaces for text embedding and message
// generation. The core domain and business logic depend on these
// abstractions rather than on concrete implementations.
//
// The package is designed around three interfaces:
//
//   - Embedder: generates vector embeddings from text
//   - Generator: generates outreach message text from a prompt
//   - Provider: aggregates both for convenient initialization
//
// Implementation sub-packages:
//
//   - ai/openai: remote OpenAI-compatible API backend
//   - ai/ollama: local Ollama model backend
//   - ai/mock: test doubles for unit testing without external services
//
// Public constructors (openai.NewProvider, ollama.NewProvider, …) return
// interface types to enforce abstraction. Mock constructors return
// concrete types to enable test assertions and behavior injection.
//
// The backend is selected by configuration presence: an API key selects
// the remote backend, otherwise the local one is used.
package ai
