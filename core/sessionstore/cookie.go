package sessionstore

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/sealedsession/core/cookie"
	"github.com/dmitrymomot/sealedsession/core/logger"
	"github.com/dmitrymomot/sealedsession/core/seal"
	"github.com/dmitrymomot/sealedsession/core/session"
)

// Sealer turns a value into an opaque, tamper-evident string and back.
// *seal.Codec is the production implementation.
type Sealer interface {
	Seal(v any) (string, error)
	Unseal(sealed string, v any) error
}

// CookieStore keeps the whole session inside a sealed cookie.
// It holds no per-request state and is safe for concurrent use.
type CookieStore struct {
	cfg     CookieConfig
	cookies *cookie.Manager
	sealer  Sealer
	logger  *slog.Logger
	metrics MetricsRecorder
	maxSize int
}

// NewCookieStore creates a cookie-backed store. Unless WithSealer is given,
// cfg.Secret must hold at least one secret accepted by seal.New.
func NewCookieStore(cfg CookieConfig, opts ...Option) (*CookieStore, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	sameSite, err := cookie.ParseSameSite(cfg.SameSite)
	if err != nil {
		return nil, err
	}

	s := &CookieStore{
		cfg:     cfg,
		logger:  logger.Discard(),
		metrics: NoopMetrics{},
		maxSize: cookie.MaxCookieSize,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.sealer == nil {
		codec, err := seal.New(cfg.secrets())
		if err != nil {
			return nil, fmt.Errorf("sessionstore: create sealing codec: %w", err)
		}
		s.sealer = codec
	}

	s.cookies = cookie.NewWithOptions([]cookie.Option{
		cookie.WithPath(cfg.Path),
		cookie.WithDomain(cfg.Domain),
		cookie.WithMaxAge(cfg.Lifetime),
		cookie.WithSameSite(sameSite),
		cookie.WithSecure(cfg.Secure),
		cookie.WithHTTPOnly(cfg.HTTPOnly),
	}, cookie.WithMaxSize(s.maxSize))

	return s, nil
}

// Config returns a copy of the store configuration.
func (s *CookieStore) Config() CookieConfig {
	return s.cfg
}

// Read unseals the session cookie. A missing, empty, expired or tampered cookie
// yields nil without an error.
func (s *CookieStore) Read(r *http.Request) (*session.Session, error) {
	if err := session.CheckRequest(r); err != nil {
		return nil, err
	}

	raw, err := s.cookies.Get(r, s.cfg.Name)
	if err != nil || raw == "" {
		s.metrics.RecordRead(StrategyCookie, ReadMiss)
		return nil, nil
	}

	var sess session.Session
	if err := s.sealer.Unseal(raw, &sess); err != nil {
		s.logger.DebugContext(r.Context(), "discarding unreadable session cookie",
			logger.Component("sessionstore"),
			logger.CookieName(s.cfg.Name),
			logger.Error(err),
		)
		s.metrics.RecordRead(StrategyCookie, ReadInvalid)
		return nil, nil
	}

	s.metrics.RecordRead(StrategyCookie, ReadHit)
	return &sess, nil
}

// Save seals the persistable snapshot of sess into the session cookie and
// returns that snapshot.
func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess session.Session) (*session.Session, error) {
	if err := session.CheckHandles(w, r); err != nil {
		return nil, err
	}

	persisted := Persist(sess, s.cfg.flags())

	sealed, err := s.sealer.Seal(persisted)
	if err != nil {
		return nil, errors.Join(ErrSealSession, err)
	}

	if err := s.cookies.Set(w, r, s.cfg.Name, sealed); err != nil {
		return nil, errors.Join(ErrWriteCookie, err)
	}

	s.metrics.RecordSave(StrategyCookie)
	return &persisted, nil
}

// Rollover rewrites the existing sealed value with a fresh cookie lifetime.
// The payload is not unsealed. Without a cookie there is nothing to extend
// and no Set-Cookie is written.
func (s *CookieStore) Rollover(w http.ResponseWriter, r *http.Request) error {
	if err := session.CheckHandles(w, r); err != nil {
		return err
	}

	raw, err := s.cookies.Get(r, s.cfg.Name)
	if err != nil || raw == "" {
		s.metrics.RecordRollover(StrategyCookie, false)
		return nil
	}

	if err := s.cookies.Set(w, r, s.cfg.Name, raw); err != nil {
		return errors.Join(ErrWriteCookie, err)
	}

	s.metrics.RecordRollover(StrategyCookie, true)
	return nil
}

// Clear expires the session cookie.
func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	if err := session.CheckHandles(w, r); err != nil {
		return err
	}

	s.cookies.Delete(w, r, s.cfg.Name)
	return nil
}

var (
	_ session.Store   = (*CookieStore)(nil)
	_ session.Clearer = (*CookieStore)(nil)
)
