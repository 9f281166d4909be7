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


// Package search provides semantic retrieval over a built profile corpus.
//
// An Index holds the (profile, vector) pairs of one corpus build and is
// immutable after construction, so the query path runs without locks.
// The Searcher embeds a query, scores it against every corpus vector by
// cosine similarity, and returns the top results in a deterministic
// order: descending score, ties broken by ascending corpus position.
package search
