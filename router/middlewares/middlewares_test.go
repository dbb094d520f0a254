package middlewares

import (
	"bytes"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/neatar/neatar/router/consts"
	"github.com/neatar/neatar/router/extension"
)

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequestBodyLengthLimit(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.POST("/", func(c echo.Context) error {
		var b bytes.Buffer
		if _, err := b.ReadFrom(c.Request().Body); err != nil {
			return echo.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
		}
		return c.String(http.StatusOK, b.String())
	}, RequestBodyLengthLimit(4))

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("abcd"))))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "abcd", rec.Body.String())
	})

	t.Run("content length too large", func(t *testing.T) {
		t.Parallel()
		rec := serve(e, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("abcde"))))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("unknown length", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("abcdef")))
		req.ContentLength = -1
		rec := serve(e, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestServerVersion(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct{ version, revision, want string }{
		{"v1.0.0", "abc", "v1.0.0.abc"},
		{"v1.0.0", "", "v1.0.0"},
	} {
		e := echo.New()
		e.Use(ServerVersion(tt.version, tt.revision))
		e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

		rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, tt.want, rec.Header().Get(consts.HeaderVersion))
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Use(RequestID())
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, extension.GetRequestID(c)) })

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(echo.HeaderXRequestID), rec.Body.String())
}

func TestAccessLogging(t *testing.T) {
	t.Parallel()

	obs, logs := observer.New(zapcore.InfoLevel)
	e := echo.New()
	e.Use(AccessLogging(zap.New(obs), false))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/error", func(_ echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest) })

	serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		req := entries[0].ContextMap()["httpRequest"].(map[string]any)
		assert.Equal(t, "GET", req["requestMethod"])
		assert.Equal(t, "/", req["requestUrl"])
		assert.EqualValues(t, http.StatusOK, req["status"])
		assert.Equal(t, "2", req["responseSize"])

		req = entries[1].ContextMap()["httpRequest"].(map[string]any)
		assert.EqualValues(t, http.StatusBadRequest, req["status"])
	}
}

func TestRecovery(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Use(Recovery(zap.NewNop()))
	e.GET("/panic", func(_ echo.Context) error { panic("boom") })
	e.GET("/closed", func(_ echo.Context) error {
		panic(&net.OpError{Op: "write", Err: os.NewSyscallError("write", syscall.EPIPE)})
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/closed", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestIsConnectionClosed(t *testing.T) {
	t.Parallel()

	assert.True(t, isConnectionClosed(&net.OpError{Err: os.NewSyscallError("write", syscall.ECONNRESET)}))
	assert.False(t, isConnectionClosed(&net.OpError{Err: errors.New("other")}))
	assert.False(t, isConnectionClosed(errors.New("boom")))
}
