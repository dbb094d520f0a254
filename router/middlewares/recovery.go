package middlewares

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/extension"
	"github.com/neatar/neatar/router/extension/herror"
)

// Recovery Recoveryミドルウェア
//
// クライアントが切断したことによるパニックは警告ログのみ残します。
func Recovery(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				pe, ok := r.(error)
				if !ok {
					pe = fmt.Errorf("%v", r)
				}
				if isConnectionClosed(pe) {
					logger.Warn(pe.Error(), zap.String("requestId", extension.GetRequestID(c)), zap.Error(pe))
					err = nil
					return
				}
				err = herror.Panic(pe)
			}()
			return next(c)
		}
	}
}

func isConnectionClosed(err error) bool {
	var ne *net.OpError
	if !errors.As(err, &ne) {
		return false
	}
	var se *os.SyscallError
	if !errors.As(ne.Err, &se) {
		return false
	}
	msg := strings.ToLower(se.Error())
	return strings.Contains(msg, "broken pipe") || strings.Contains(msg, "connection reset by peer")
}
