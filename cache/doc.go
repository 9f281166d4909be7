// Package cache provides a BadgerDB-backed cache of query embeddings.
//
// Entries are keyed by a BLAKE2b digest of the model identifier and the
// query text, so a model change never serves stale vectors. The cache is
// strictly best-effort: lookup and store failures are logged and the
// caller proceeds as if the cache were empty.
package cache
