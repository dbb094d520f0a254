package extension

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// Context echo.Contextのカスタム
type Context struct {
	echo.Context
}

// JSON encoding/jsonをjsoniter.ConfigFastestに置換
//
// クエリに"pretty"がある場合は標準のインデント付き出力になります。
func (c *Context) JSON(code int, i any) error {
	if _, pretty := c.QueryParams()["pretty"]; pretty {
		return c.Context.JSON(code, i)
	}
	return json(c, code, i, jsoniter.ConfigFastest)
}

func json(c echo.Context, code int, i any, cfg jsoniter.API) error {
	stream := cfg.BorrowStream(c.Response())
	defer cfg.ReturnStream(stream)

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c.Response().WriteHeader(code)
	stream.WriteVal(i)
	stream.WriteRaw("\n")
	return stream.Flush()
}

// Wrap カスタムコンテキストラッパー
func Wrap() echo.MiddlewareFunc {
	return func(n echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error { return n(&Context{Context: c}) }
	}
}
