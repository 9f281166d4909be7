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


// Package server exposes the search corpus over HTTP.
//
// Endpoints mirror the error taxonomy of the underlying packages:
// malformed input maps to 400, unknown profiles to 404, and backend
// configuration or transport failures to 500. Internal error details
// are logged, never returned to the client.
package server
