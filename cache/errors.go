package cache

import "errors"

var (
	// ErrInvalidTTL is returned when a non-positive TTL is configured.
	ErrInvalidTTL = errors.New("ttl must be positive")
)
