package sessionstore

import (
	"net/http"
	"sync"

	"github.com/dmitrymomot/sealedsession/core/session"
)

// MemoryStore holds a single session in process memory.
//
// One instance represents one logical session context, e.g. a test or a
// single-tenant process. It does not key sessions by request, so sharing an
// instance between users shares the session.
type MemoryStore struct {
	mu      sync.RWMutex
	session *session.Session
	metrics MetricsRecorder
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithInitialSession seeds the store with sess.
func WithInitialSession(sess session.Session) MemoryOption {
	return func(s *MemoryStore) {
		s.session = &sess
	}
}

// WithMemoryMetrics sets the metrics recorder.
func WithMemoryMetrics(metrics MetricsRecorder) MemoryOption {
	return func(s *MemoryStore) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{metrics: NoopMetrics{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the held session, or nil.
func (s *MemoryStore) Read(r *http.Request) (*session.Session, error) {
	if err := session.CheckRequest(r); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		s.metrics.RecordRead(StrategyMemory, ReadMiss)
		return nil, nil
	}

	s.metrics.RecordRead(StrategyMemory, ReadHit)
	sess := *s.session
	return &sess, nil
}

// Save replaces the held session with sess, unfiltered, and returns it.
func (s *MemoryStore) Save(w http.ResponseWriter, r *http.Request, sess session.Session) (*session.Session, error) {
	if err := session.CheckHandles(w, r); err != nil {
		return nil, err
	}

	s.mu.Lock()
	held := sess
	s.session = &held
	s.mu.Unlock()

	s.metrics.RecordSave(StrategyMemory)
	return &sess, nil
}

// Rollover does nothing: an in-process session has no client-visible expiry.
func (s *MemoryStore) Rollover(w http.ResponseWriter, r *http.Request) error {
	if err := session.CheckHandles(w, r); err != nil {
		return err
	}

	s.metrics.RecordRollover(StrategyMemory, false)
	return nil
}

// Clear drops the held session.
func (s *MemoryStore) Clear(w http.ResponseWriter, r *http.Request) error {
	if err := session.CheckHandles(w, r); err != nil {
		return err
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return nil
}

var (
	_ session.Store   = (*MemoryStore)(nil)
	_ session.Clearer = (*MemoryStore)(nil)
)
