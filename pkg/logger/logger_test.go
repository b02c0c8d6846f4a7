package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/materials/pkg/logger"
)

func TestHandler_AddsContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(&logger.Handler{slog.NewJSONHandler(&buf, nil)}).With("component", "test")

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "42")
	ctx = logger.SetIP(ctx, "10.0.0.1")

	l.InfoContext(ctx, "hello")

	var got map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, "42", got["user_id"])
	require.Equal(t, "materials", got["origin_service"])
	require.Equal(t, "test", got["component"])
	require.Equal(t, "10.0.0.1", got["user_ip"])
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelDebug, logger.ParseLevel("debug"))
	require.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	require.Equal(t, slog.LevelInfo, logger.ParseLevel("nonsense"))
}
