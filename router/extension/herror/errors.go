package herror

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func BadRequest(err ...any) error {
	return HTTPError(http.StatusBadRequest, err)
}

func NotFound(err ...any) error {
	return HTTPError(http.StatusNotFound, err)
}

func TooManyRequests(err ...any) error {
	return HTTPError(http.StatusTooManyRequests, err)
}

// HTTPError echo.HTTPErrorを生成します。errにはstringかerrorを渡せます
func HTTPError(code int, err any) error {
	switch v := err.(type) {
	case []any:
		if len(v) > 0 {
			return HTTPError(code, v[0])
		}
		return echo.NewHTTPError(code)
	case string:
		return echo.NewHTTPError(code, v)
	case error:
		return echo.NewHTTPError(code, v.Error()).SetInternal(v)
	case nil:
		return echo.NewHTTPError(code)
	default:
		return echo.NewHTTPError(code, v)
	}
}
