package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// core 書き出し時にCloud Logging用のフィールドを補います
type core struct {
	zapcore.Core
	service serviceContext
}

func wrapCore(c zapcore.Core, name, version string) zapcore.Core {
	return &core{
		Core:    c,
		service: serviceContext{Name: name, Version: version},
	}
}

func (c *core) With(fields []zap.Field) zapcore.Core {
	return &core{
		Core:    c.Core.With(fields),
		service: c.service,
	}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	fields = appendIfAbsent(fields, serviceContextKey, func() zap.Field {
		return zap.Object(serviceContextKey, c.service)
	})
	if !ent.Caller.Defined {
		return c.Core.Write(ent, fields)
	}

	fields = appendIfAbsent(fields, sourceLocationKey, func() zap.Field {
		return SourceLocation(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true)
	})
	if zapcore.ErrorLevel.Enabled(ent.Level) {
		fields = appendIfAbsent(fields, reportContextKey, func() zap.Field {
			return ErrorReport(ent.Caller.PC, ent.Caller.File, ent.Caller.Line, true)
		})
	}
	return c.Core.Write(ent, fields)
}

func appendIfAbsent(fields []zapcore.Field, key string, f func() zap.Field) []zapcore.Field {
	for _, field := range fields {
		if field.Key == key {
			return fields
		}
	}
	return append(fields, f())
}
