// Package corpus builds the search corpus from a raw profile export.
//
// The build is an offline batch pipeline: raw rows are normalized into
// Profiles in input order, their embedding texts are converted to vectors
// in parallel batches, and the result is handed to the store package for
// persistence. The build is best-effort end to end: malformed rows still
// yield profiles, and a failing embedding batch degrades to zero vectors
// without affecting other batches.
package corpus
