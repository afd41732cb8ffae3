package cookie

import (
	"errors"
	"net/http"
	"time"
)

// MaxCookieSize is the default limit for one Set-Cookie directive (4KB).
const MaxCookieSize = 4096

// Manager reads and writes raw cookie values with shared default attributes.
// It never transforms values; sealing or signing is the caller's concern.
// Safe for concurrent use: it holds no mutable state after construction.
type Manager struct {
	defaults Options
	maxSize  int
}

// ManagerOption configures the Manager itself rather than individual cookies.
type ManagerOption func(*Manager)

// WithMaxSize sets the maximum size of a serialized Set-Cookie directive.
func WithMaxSize(size int) ManagerOption {
	return func(m *Manager) {
		if size > 0 {
			m.maxSize = size
		}
	}
}

// New creates a cookie manager. Defaults are Path "/", HttpOnly and SameSite=Lax;
// opts override them for every cookie the manager writes.
func New(opts ...Option) *Manager {
	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		defaults: applyOptions(defaults, opts),
		maxSize:  MaxCookieSize,
	}
}

// NewWithOptions creates a cookie manager with additional manager options.
func NewWithOptions(cookieOpts []Option, managerOpts ...ManagerOption) *Manager {
	m := New(cookieOpts...)
	for _, opt := range managerOpts {
		opt(m)
	}
	return m
}

// Defaults returns the attributes applied to every cookie.
func (m *Manager) Defaults() Options {
	return m.defaults
}

// Parse returns every cookie on the request as name → raw value.
// When a name repeats, the first occurrence wins, as with http.Request.Cookie.
func (m *Manager) Parse(r *http.Request) map[string]string {
	cookies := r.Cookies()
	values := make(map[string]string, len(cookies))
	for _, c := range cookies {
		if _, seen := values[c.Name]; !seen {
			values[c.Name] = c.Value
		}
	}
	return values
}

// Get returns the raw value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Set writes one Set-Cookie directive. Secure is forced when the request arrived
// over TLS or SameSite=None is requested.
func (m *Manager) Set(w http.ResponseWriter, r *http.Request, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	c := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   options.MaxAge,
		Secure:   options.Secure || isTLS(r) || options.SameSite == http.SameSiteNoneMode,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	}
	if options.MaxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(options.MaxAge) * time.Second)
	}

	header := c.String()
	if header == "" {
		return ErrInvalidCookie
	}
	if len(header) > m.maxSize {
		return ErrCookieTooLarge{
			Name: name,
			Size: len(header),
			Max:  m.maxSize,
		}
	}

	w.Header().Add("Set-Cookie", header)
	return nil
}

// Delete expires the named cookie. Path and domain must match the ones it was set with.
func (m *Manager) Delete(w http.ResponseWriter, r *http.Request, name string, opts ...Option) {
	options := applyOptions(m.defaults, opts)

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   options.Secure || isTLS(r) || options.SameSite == http.SameSiteNoneMode,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

func isTLS(r *http.Request) bool {
	return r != nil && r.TLS != nil
}
