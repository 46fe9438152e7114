package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func TestWithContext(t *testing.T) {
	logger := zap.NewNop()
	ctx := WithContext(context.Background(), logger)
	assert.Equal(t, logger, FromContext(ctx))
}

func TestFromContext_Missing(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
}

func TestWithRequestID(t *testing.T) {
	logger, logs := observedLogger()

	ctx, enriched := WithRequestID(context.Background(), logger, "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))

	enriched.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "req-123", logs.All()[0].ContextMap()["request_id"])
}

func TestWithSessionID(t *testing.T) {
	logger, logs := observedLogger()

	ctx, enriched := WithSessionID(context.Background(), logger, "sess-456")
	assert.Equal(t, "sess-456", GetSessionID(ctx))

	enriched.Info("hello")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sess-456", logs.All()[0].ContextMap()["session_id"])
}

func TestWithUserID(t *testing.T) {
	logger, _ := observedLogger()

	ctx, _ := WithUserID(context.Background(), logger, "user-789")
	assert.Equal(t, "user-789", GetUserID(ctx))
}

func TestGetters_Missing(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))
	assert.Empty(t, GetSessionID(ctx))
	assert.Empty(t, GetUserID(ctx))
	assert.Empty(t, GetTraceID(ctx))
	assert.Empty(t, GetSpanID(ctx))
}

func TestContextLogger_InjectsContextFields(t *testing.T) {
	logger, logs := observedLogger()

	ctx := WithContext(context.Background(), logger)
	ctx = context.WithValue(ctx, RequestIDKey, "req-abc")
	ctx = context.WithValue(ctx, SessionIDKey, "sess-def")

	L(ctx).Info("checkout started")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-abc", fields["request_id"])
	assert.Equal(t, "sess-def", fields["session_id"])
	assert.NotContains(t, fields, "user_id")
}

func TestContextLogger_With(t *testing.T) {
	logger, logs := observedLogger()

	cl := WithLogger(context.Background(), logger).With(zap.String("component", "cart"))
	cl.Warn("slow save")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "cart", logs.All()[0].ContextMap()["component"])
}

func TestContextLogger_NilLogger(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}
	// Must not panic.
	cl.Info("nothing to see")
}

func TestWithTraceContext_NoSpan(t *testing.T) {
	logger := zap.NewNop()
	assert.Equal(t, logger, WithTraceContext(context.Background(), logger))
}
