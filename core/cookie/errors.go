package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrCookieNotFound indicates the requested cookie doesn't exist in the request.
	ErrCookieNotFound = errors.New("cookie not found in request")

	// ErrInvalidCookie indicates the name or value cannot be serialized into a
	// Set-Cookie header.
	ErrInvalidCookie = errors.New("invalid cookie name or value")

	// ErrInvalidSameSite indicates an unknown SameSite configuration value.
	ErrInvalidSameSite = errors.New("invalid same-site policy")
)

// ErrCookieTooLarge indicates the cookie exceeds the maximum allowed size.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

// Error implements the error interface.
func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
