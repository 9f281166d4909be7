package store

import "errors"

var (
	// ErrCountMismatch is returned when the profile and vector counts in a
	// data directory disagree with each other or with the metadata.
	ErrCountMismatch = errors.New("profile and vector counts disagree")

	// ErrCorruptVectors is returned when the vector file cannot be decoded.
	ErrCorruptVectors = errors.New("vector file is corrupt")
)
