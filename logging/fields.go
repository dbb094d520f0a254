package logging

import (
	"runtime"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	serviceContextKey = "serviceContext"
	sourceLocationKey = "logging.googleapis.com/sourceLocation"
	reportContextKey  = "context"
)

type serviceContext struct {
	Name    string `json:"service"`
	Version string `json:"version"`
}

// ServiceContext Error Reporting用のserviceContextフィールド
func ServiceContext(name, version string) zap.Field {
	return zap.Object(serviceContextKey, serviceContext{Name: name, Version: version})
}

func (s serviceContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("service", s.Name)
	enc.AddString("version", s.Version)
	return nil
}

// location ソースコード上の位置
type location struct {
	File     string
	Line     string
	Function string
}

func newLocation(pc uintptr, file string, line int, ok bool) *location {
	if !ok {
		return nil
	}
	l := &location{
		File: file,
		Line: strconv.Itoa(line),
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		l.Function = fn.Name()
	}
	return l
}

type sourceLocation location

// SourceLocation ログ出力箇所を示すsourceLocationフィールド
//
// runtime.Callerの戻り値をそのまま渡せます。
func SourceLocation(pc uintptr, file string, line int, ok bool) zap.Field {
	return zap.Object(sourceLocationKey, (*sourceLocation)(newLocation(pc, file, line, ok)))
}

func (l *sourceLocation) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if l == nil {
		return nil
	}
	enc.AddString("file", l.File)
	enc.AddString("line", l.Line)
	enc.AddString("function", l.Function)
	return nil
}

type reportContext struct {
	ReportLocation *location
}

// ErrorReport Error Reporting用のcontextフィールド
func ErrorReport(pc uintptr, file string, line int, ok bool) zap.Field {
	var c *reportContext
	if l := newLocation(pc, file, line, ok); l != nil {
		c = &reportContext{ReportLocation: l}
	}
	return zap.Object(reportContextKey, c)
}

func (c *reportContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if c == nil {
		return nil
	}
	return enc.AddObject("reportLocation", zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		enc.AddString("filePath", c.ReportLocation.File)
		enc.AddString("lineNumber", c.ReportLocation.Line)
		enc.AddString("functionName", c.ReportLocation.Function)
		return nil
	}))
}
