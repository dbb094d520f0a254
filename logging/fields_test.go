package logging

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestServiceContext(t *testing.T) {
	t.Parallel()

	f := ServiceContext("neatar", "v1.2.3.abcdef")
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)

	assert.Equal(t, map[string]any{
		"service": "neatar",
		"version": "v1.2.3.abcdef",
	}, enc.Fields[serviceContextKey])
}

func TestSourceLocation(t *testing.T) {
	t.Parallel()

	assert.Nil(t, SourceLocation(0, "", 0, false).Interface)

	sl := SourceLocation(runtime.Caller(0)).Interface.(*sourceLocation)
	assert.Contains(t, sl.File, "logging/fields_test.go")
	assert.Equal(t, "29", sl.Line)
	assert.Equal(t, "github.com/neatar/neatar/logging.TestSourceLocation", sl.Function)

	enc := zapcore.NewMapObjectEncoder()
	assert.NoError(t, (&sourceLocation{File: "a", Line: "1", Function: "f"}).MarshalLogObject(enc))
	assert.Equal(t, map[string]any{"file": "a", "line": "1", "function": "f"}, enc.Fields)
}

func TestErrorReport(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ErrorReport(0, "", 0, false).Interface)

	c := ErrorReport(runtime.Caller(0)).Interface.(*reportContext)
	assert.Contains(t, c.ReportLocation.File, "logging/fields_test.go")
	assert.Equal(t, "44", c.ReportLocation.Line)
	assert.Equal(t, "github.com/neatar/neatar/logging.TestErrorReport", c.ReportLocation.Function)

	enc := zapcore.NewMapObjectEncoder()
	assert.NoError(t, (&reportContext{ReportLocation: &location{File: "a", Line: "1", Function: "f"}}).MarshalLogObject(enc))
	assert.Equal(t, map[string]any{
		"reportLocation": map[string]any{"filePath": "a", "lineNumber": "1", "functionName": "f"},
	}, enc.Fields)
}
