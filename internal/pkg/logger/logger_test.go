package logger

import (
	"bytes"
	"context"
	log "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandler_AddsTraceAndUser(t *testing.T) {
	var buf bytes.Buffer
	l := log.New(&ContextHandler{log.NewJSONHandler(&buf, nil)})

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-1")
	ctx = context.WithValue(ctx, UserIDKey, "user-1")
	l.InfoContext(ctx, "hello")

	out := buf.String()
	assert.Contains(t, out, `"trace_id":"trace-1"`)
	assert.Contains(t, out, `"user_id":"user-1"`)
}

func TestRemoteFilterHandler_DropsRecordsWithoutTrace(t *testing.T) {
	var local, remote bytes.Buffer
	tee := &TeeHandler{handlers: []log.Handler{
		log.NewJSONHandler(&local, nil),
		&RemoteFilterHandler{next: log.NewJSONHandler(&remote, nil)},
	}}
	l := log.New(&ContextHandler{tee})

	l.Info("startup")
	assert.NotEmpty(t, local.String())
	assert.Empty(t, remote.String())

	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-2")
	l.InfoContext(ctx, "request")
	require.Contains(t, remote.String(), "trace-2")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, log.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, log.LevelError, ParseLevel("error"))
	assert.Equal(t, log.LevelInfo, ParseLevel(""))
}
