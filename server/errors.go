package server

import "errors"

var (
	// ErrSearcherRequired is returned when a server is built without a searcher.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrGeneratorRequired is returned when a server is built without a message generator.
	ErrGeneratorRequired = errors.New("message generator required")
)
