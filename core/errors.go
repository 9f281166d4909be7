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


package core

import "errors"

// Domain error kinds. The HTTP layer maps each kind to a status code;
// callers test with errors.Is.
var (
	// ErrEmptyQuery indicates a search was attempted with an empty query string.
	ErrEmptyQuery = errors.New("query must not be empty")

	// ErrProfileNotFound indicates a corpus position outside the loaded range.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrBackendNotConfigured indicates no embedding or generation backend
	// is available. Distinct from a transient backend failure: retrying
	// cannot help until configuration changes.
	ErrBackendNotConfigured = errors.New("backend not configured")

	// ErrDimensionMismatch indicates a vector whose length disagrees with
	// the corpus embedding dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
