package sessiondemo

import "errors"

var (
	// ErrUnknownStore is returned for an unsupported SESSION_STORE value.
	ErrUnknownStore = errors.New("sessiondemo: unknown session store")
	// ErrNilDependency is returned when an option receives nil.
	ErrNilDependency = errors.New("sessiondemo: dependency cannot be nil")
)
