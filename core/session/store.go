package session

import "net/http"

// Store persists a session between requests.
//
// Absence of a session is reported as a nil *Session with a nil error.
// Implementations return ErrUnavailable when the request or response handle is nil,
// before any other side effect.
type Store interface {
	// Read returns the current session or nil when there is none that can be recovered.
	Read(r *http.Request) (*Session, error)

	// Save persists sess and returns the value that was actually stored,
	// which may be a filtered copy of sess.
	Save(w http.ResponseWriter, r *http.Request, sess Session) (*Session, error)

	// Rollover extends the session expiry without changing its content.
	Rollover(w http.ResponseWriter, r *http.Request) error
}

// Clearer destroys the current session, e.g. on logout.
type Clearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

// CheckRequest returns ErrUnavailable when the request handle is missing.
func CheckRequest(r *http.Request) error {
	if r == nil {
		return ErrUnavailable
	}
	return nil
}

// CheckHandles returns ErrUnavailable when either handle is missing.
func CheckHandles(w http.ResponseWriter, r *http.Request) error {
	if w == nil || r == nil {
		return ErrUnavailable
	}
	return nil
}
