// Package mock provides test doubles for the ai package interfaces.
//
// The mocks generate deterministic embeddings from text hashes so ranking
// behavior can be asserted without a live backend, and allow behavior
// injection via function fields for error-path testing.
package mock
