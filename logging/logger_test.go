package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, dev := range []bool{false, true} {
		l, err := New(Config{ServiceName: "neatar", ServiceVersion: "test", Development: dev})
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestCore_Write(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(wrapCore(obs, "neatar", "v1"), zap.AddCaller())

	l.Info("info")
	l.Error("error", zap.Error(errors.New("boom")))
	l.Info("explicit", ServiceContext("other", "v2"))
	l.With(zap.String("k", "v")).Warn("with")

	entries := logs.All()
	require.Len(t, entries, 4)

	info := entries[0].ContextMap()
	assert.Equal(t, map[string]any{"service": "neatar", "version": "v1"}, info[serviceContextKey])
	assert.Contains(t, info, sourceLocationKey)
	assert.NotContains(t, info, reportContextKey)

	errEntry := entries[1].ContextMap()
	assert.Contains(t, errEntry, reportContextKey)
	assert.Equal(t, "boom", errEntry["error"])

	assert.Equal(t, map[string]any{"service": "other", "version": "v2"}, entries[2].ContextMap()[serviceContextKey])

	assert.Equal(t, "v", entries[3].ContextMap()["k"])
}

func TestCore_WriteWithoutCaller(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(wrapCore(obs, "neatar", "v1"))

	l.Error("error")

	ctx := logs.All()[0].ContextMap()
	assert.Contains(t, ctx, serviceContextKey)
	assert.NotContains(t, ctx, sourceLocationKey)
	assert.NotContains(t, ctx, reportContextKey)
}
