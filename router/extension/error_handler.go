package extension

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/extension/herror"
)

// ErrorHandler カスタムエラーハンドラ
//
// レスポンスボディは{"message": "..."}の形式になります。
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(e error, c echo.Context) {
		if e == nil {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(http.StatusInternalServerError)

		var (
			herr *echo.HTTPError
			ierr *herror.InternalError
		)
		switch {
		case errors.As(e, &ierr):
			logger.Error(ierr.Err.Error(), append(ierr.Fields, zap.String("requestId", GetRequestID(c)))...)
		case errors.As(e, &herr):
			if inner, ok := herr.Internal.(*echo.HTTPError); ok {
				herr = inner
			}
			code = herr.Code
			switch m := herr.Message.(type) {
			case string:
				message = m
			case error:
				message = m.Error()
			default:
				message = http.StatusText(code)
			}
		default:
			logger.Error(e.Error(), zap.Error(e), zap.String("requestId", GetRequestID(c)))
		}

		if c.Response().Committed {
			return
		}
		var err error
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = json(c, code, echo.Map{"message": message}, jsoniter.ConfigFastest)
		}
		if err != nil {
			logger.Warn("failed to send error response", zap.Error(err), zap.String("requestId", GetRequestID(c)))
		}
	}
}
