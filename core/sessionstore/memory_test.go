package sessionstore_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealedsession/core/session"
	"github.com/dmitrymomot/sealedsession/core/sessionstore"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("empty store reads nil", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore()
		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save is unfiltered", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore()
		sess := fullSession()

		saved, err := store.Save(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), sess)
		require.NoError(t, err)
		assert.Equal(t, sess, *saved)

		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, sess, *got)
	})

	t.Run("save writes no cookie", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore()
		rec := httptest.NewRecorder()
		_, err := store.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), fullSession())
		require.NoError(t, err)
		assert.Empty(t, rec.Header().Values("Set-Cookie"))
	})

	t.Run("initial session", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore(sessionstore.WithInitialSession(fullSession()))
		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "user-123", got.Subject())
	})

	t.Run("read returns a copy", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore(sessionstore.WithInitialSession(fullSession()))
		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)

		got.AccessToken = "mutated"

		again, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, "access-token", again.AccessToken)
	})

	t.Run("rollover is a no-op", func(t *testing.T) {
		t.Parallel()

		sess := fullSession()
		store := sessionstore.NewMemoryStore(sessionstore.WithInitialSession(sess))

		rec := httptest.NewRecorder()
		require.NoError(t, store.Rollover(rec, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Empty(t, rec.Header().Values("Set-Cookie"))

		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, sess, *got)
	})

	t.Run("clear drops the session", func(t *testing.T) {
		t.Parallel()

		store := sessionstore.NewMemoryStore(sessionstore.WithInitialSession(fullSession()))
		require.NoError(t, store.Clear(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil)))

		got, err := store.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("instances are isolated", func(t *testing.T) {
		t.Parallel()

		a := sessionstore.NewMemoryStore()
		b := sessionstore.NewMemoryStore()

		_, err := a.Save(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), fullSession())
		require.NoError(t, err)

		got, err := b.Read(httptest.NewRequest(http.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMemoryStore_UnavailableHandles(t *testing.T) {
	t.Parallel()

	store := sessionstore.NewMemoryStore()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := store.Read(nil)
	assert.ErrorIs(t, err, session.ErrUnavailable)

	saved, err := store.Save(nil, req, fullSession())
	assert.ErrorIs(t, err, session.ErrUnavailable)
	assert.Nil(t, saved)

	_, err = store.Save(httptest.NewRecorder(), nil, fullSession())
	assert.ErrorIs(t, err, session.ErrUnavailable)

	got, err := store.Read(req)
	require.NoError(t, err)
	assert.Nil(t, got, "failed saves must not change state")

	assert.ErrorIs(t, store.Rollover(nil, req), session.ErrUnavailable)
	assert.ErrorIs(t, store.Rollover(httptest.NewRecorder(), nil), session.ErrUnavailable)
	assert.ErrorIs(t, store.Clear(nil, req), session.ErrUnavailable)
}

func TestMemoryStore_Metrics(t *testing.T) {
	t.Parallel()

	metrics := &recordingMetrics{}
	store := sessionstore.NewMemoryStore(sessionstore.WithMemoryMetrics(metrics))
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, _ = store.Read(req)
	_, err := store.Save(httptest.NewRecorder(), req, fullSession())
	require.NoError(t, err)
	_, _ = store.Read(req)
	require.NoError(t, store.Rollover(httptest.NewRecorder(), req))

	assert.Equal(t, []string{sessionstore.ReadMiss, sessionstore.ReadHit}, metrics.reads)
	assert.Equal(t, 1, metrics.saves)
	assert.Equal(t, []bool{false}, metrics.rollovers)
}
