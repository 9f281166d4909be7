// Package normalize turns raw profile export rows into canonical Profile
// records and their embedding text.
//
// All functions here are pure: no I/O, no shared state. The same RawRecord
// always produces a byte-identical embedding text, which is what makes
// corpus rebuilds reproducible. Malformed nested JSON never causes an
// error; it degrades to cleaned text.
package normalize
