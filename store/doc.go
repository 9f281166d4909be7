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


// Package store persists and loads the built corpus.
//
// A corpus build writes three artifacts into one data directory:
//
//   - profiles.json: the ordered profile list, human-inspectable
//   - vectors.mus: the embedding matrix in a compact binary encoding
//     that reloads without text parsing
//   - metadata.json: profile count, vector dimension, model identifier,
//     and the corpus content checksum
//
// The artifacts are write-once per build and read-only while serving;
// Load cross-checks them against each other and fails fast on any
// disagreement rather than serving a torn corpus.
package store
