package herror

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/neatar/neatar/logging"
)

// InternalError 内部エラー
type InternalError struct {
	// Err エラー
	Err error
	// Stack スタックトレース
	Stack []byte
	// Fields zapログ用フィールド
	Fields []zap.Field
}

func (i *InternalError) Error() string {
	return fmt.Sprintf("%s\n%s", i.Err.Error(), i.Stack)
}

func (i *InternalError) Unwrap() error {
	return i.Err
}

// InternalServerError 500エラーを返します。呼び出し元の位置がエラーレポートに記録されます
func InternalServerError(err error) error {
	return &InternalError{
		Err:    err,
		Stack:  debug.Stack(),
		Fields: []zap.Field{logging.ErrorReport(runtime.Caller(1)), zap.Error(err)},
	}
}

// Panic リカバリーしたパニックを500エラーにします
func Panic(err error) error {
	return &InternalError{
		Err:    fmt.Errorf("panic: %w", err),
		Stack:  debug.Stack(),
		Fields: []zap.Field{logging.ErrorReport(runtime.Caller(1)), zap.Error(err), zap.Bool("panic", true)},
	}
}
