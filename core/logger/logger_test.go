package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealedsession/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithService("sessiondemo"))
	log.Debug("hidden")
	log.Info("visible", logger.Component("test"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "visible", rec["msg"])
	assert.Equal(t, "sessiondemo", rec["service"])
	assert.Equal(t, "test", rec["component"])
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("text format and debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Level: "debug", Format: "text"}, logger.WithOutput(&buf))
		log.Debug("probe")
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=probe")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.NewFromConfig(logger.Config{Level: "loud"}, logger.WithOutput(&buf))
		log.Debug("hidden")
		assert.Empty(t, buf.String())
		log.Info("shown")
		assert.NotEmpty(t, buf.String())
	})
}

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 2)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestEmptyInputDropsAttr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		attr slog.Attr
	}{
		{"error", logger.Error(nil)},
		{"request id", logger.RequestID("")},
		{"cookie name", logger.CookieName("")},
		{"subject", logger.Subject("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, tt.attr.Equal(slog.Attr{}))
		})
	}
}

func TestAttrKeys(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "latency", logger.Latency(time.Second).Key)
	assert.Equal(t, "request_id", logger.RequestID("abc").Key)
	assert.Equal(t, "method", logger.Method("GET").Key)
	assert.Equal(t, "path", logger.Path("/").Key)
	assert.Equal(t, int64(204), logger.StatusCode(204).Value.Int64())
	assert.Equal(t, "strategy", logger.Strategy("cookie").Key)
	assert.Equal(t, "cookie", logger.CookieName("__session").Key)
	assert.Equal(t, "user-1", logger.Subject("user-1").Value.String())
}
