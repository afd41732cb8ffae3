package cookie_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealedsession/core/cookie"
)

// responseCookies parses the Set-Cookie headers written to w.
func responseCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	return w.Result().Cookies()
}

func TestManager_SetAndGet(t *testing.T) {
	t.Parallel()

	t.Run("round trip through request", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, m.Set(w, r, "session", "abc.123"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Cookie", w.Header().Get("Set-Cookie"))

		value, err := m.Get(req, "session")
		require.NoError(t, err)
		assert.Equal(t, "abc.123", value)
	})

	t.Run("cookie not found", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		_, err := m.Get(httptest.NewRequest(http.MethodGet, "/", nil), "missing")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		err := m.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "bad name;", "v")
		assert.ErrorIs(t, err, cookie.ErrInvalidCookie)
		assert.Empty(t, w.Header().Values("Set-Cookie"))
	})
}

func TestManager_Attributes(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "a", "1"))

		cookies := responseCookies(w)
		require.Len(t, cookies, 1)
		assert.Equal(t, "/", cookies[0].Path)
		assert.True(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
		assert.Equal(t, 0, cookies[0].MaxAge)
	})

	t.Run("per-call options override defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New(cookie.WithDomain("example.com"))
		w := httptest.NewRecorder()
		err := m.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "a", "1",
			cookie.WithPath("/app"),
			cookie.WithMaxAge(3600),
			cookie.WithSameSite(http.SameSiteStrictMode),
			cookie.WithHTTPOnly(false),
		)
		require.NoError(t, err)

		cookies := responseCookies(w)
		require.Len(t, cookies, 1)
		assert.Equal(t, "/app", cookies[0].Path)
		assert.Equal(t, "example.com", cookies[0].Domain)
		assert.Equal(t, 3600, cookies[0].MaxAge)
		assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
		assert.False(t, cookies[0].HttpOnly)
		assert.False(t, cookies[0].Expires.IsZero())
	})

	t.Run("per-call options do not leak into defaults", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		require.NoError(t, m.Set(httptest.NewRecorder(), r, "a", "1", cookie.WithPath("/other")))

		assert.Equal(t, "/", m.Defaults().Path)
	})

	t.Run("secure forced over tls", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		r := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
		r.TLS = &tls.ConnectionState{}
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, r, "a", "1"))

		cookies := responseCookies(w)
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].Secure)
	})

	t.Run("secure forced for same-site none", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		require.NoError(t, m.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "a", "1",
			cookie.WithSameSite(http.SameSiteNoneMode)))

		cookies := responseCookies(w)
		require.Len(t, cookies, 1)
		assert.True(t, cookies[0].Secure)
	})
}

func TestManager_SizeLimit(t *testing.T) {
	t.Parallel()

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		m := cookie.New()
		w := httptest.NewRecorder()
		err := m.Set(w, httptest.NewRequest(http.MethodGet, "/", nil), "big", strings.Repeat("x", 5000))

		var tooLarge cookie.ErrCookieTooLarge
		require.ErrorAs(t, err, &tooLarge)
		assert.Equal(t, "big", tooLarge.Name)
		assert.Equal(t, cookie.MaxCookieSize, tooLarge.Max)
		assert.Greater(t, tooLarge.Size, cookie.MaxCookieSize)
		assert.Empty(t, w.Header().Values("Set-Cookie"))
	})

	t.Run("custom limit", func(t *testing.T) {
		t.Parallel()

		m := cookie.NewWithOptions(nil, cookie.WithMaxSize(64))
		err := m.Set(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), "c", strings.Repeat("x", 100))
		assert.ErrorAs(t, err, &cookie.ErrCookieTooLarge{})
	})
}

func TestManager_Parse(t *testing.T) {
	t.Parallel()

	m := cookie.New()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Cookie", "a=1; b=two; a=shadowed")

	values := m.Parse(r)
	assert.Equal(t, map[string]string{"a": "1", "b": "two"}, values)

	assert.Empty(t, m.Parse(httptest.NewRequest(http.MethodGet, "/", nil)))
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()

	m := cookie.New(cookie.WithDomain("example.com"))
	w := httptest.NewRecorder()
	m.Delete(w, httptest.NewRequest(http.MethodGet, "/", nil), "session", cookie.WithPath("/app"))

	cookies := responseCookies(w)
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Equal(t, "/app", cookies[0].Path)
	assert.Equal(t, "example.com", cookies[0].Domain)
}

func TestParseSameSite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want http.SameSite
	}{
		{"", http.SameSiteLaxMode},
		{"lax", http.SameSiteLaxMode},
		{" Strict ", http.SameSiteStrictMode},
		{"NONE", http.SameSiteNoneMode},
		{"default", http.SameSiteDefaultMode},
	}

	for _, tt := range tests {
		got, err := cookie.ParseSameSite(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := cookie.ParseSameSite("sometimes")
	assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies configured attributes", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.Domain = "example.com"
		cfg.Secure = true
		cfg.SameSite = "strict"

		m, err := cookie.NewFromConfig(cfg)
		require.NoError(t, err)

		d := m.Defaults()
		assert.Equal(t, "/", d.Path)
		assert.Equal(t, "example.com", d.Domain)
		assert.True(t, d.Secure)
		assert.True(t, d.HttpOnly)
		assert.Equal(t, http.SameSiteStrictMode, d.SameSite)
	})

	t.Run("rejects unknown same-site", func(t *testing.T) {
		t.Parallel()

		cfg := cookie.DefaultConfig()
		cfg.SameSite = "bogus"

		_, err := cookie.NewFromConfig(cfg)
		assert.ErrorIs(t, err, cookie.ErrInvalidSameSite)
	})
}
