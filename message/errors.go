package message

import "errors"

var (
	// ErrProfileRequired is returned when no profile is provided.
	ErrProfileRequired = errors.New("profile required")

	// ErrSenderContextRequired is returned when the sender context is empty.
	ErrSenderContextRequired = errors.New("sender context required")
)
