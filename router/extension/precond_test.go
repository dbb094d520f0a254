package extension

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/neatar/neatar/router/consts"
)

func newExpect(t *testing.T, server *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, true),
		},
		Client: &http.Client{
			Jar:     nil, // クッキーは保持しない
			Timeout: time.Second * 30,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse // リダイレクトを自動処理しない
			},
		},
	})
}

func TestETag(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"`, ETag(nil))
	assert.Equal(t, ETag([]byte("a")), ETag([]byte("a")))
	assert.NotEqual(t, ETag([]byte("a")), ETag([]byte("b")))
}

func TestCheckPreconditions(t *testing.T) {
	t.Parallel()

	eTag := `"xyz"`

	e := echo.New()
	e.Any("/", func(c echo.Context) error {
		c.Response().Header().Set(consts.HeaderETag, eTag)
		if ok, err := CheckPreconditions(c); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err)
		} else if ok {
			return nil
		}
		return c.String(http.StatusOK, "OK")
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	tests := []struct {
		name   string
		method string
		header string
		value  string
		status int
	}{
		{"OK", http.MethodGet, "", "", http.StatusOK},
		{"OK (If-None-Match)", http.MethodGet, consts.HeaderIfNoneMatch, `"abc", W/"def", "`, http.StatusOK},
		{"NotModified (If-None-Match)", http.MethodGet, consts.HeaderIfNoneMatch, `"xyz"`, http.StatusNotModified},
		{"NotModified (weak If-None-Match)", http.MethodGet, consts.HeaderIfNoneMatch, `"abc", W/"xyz"`, http.StatusNotModified},
		{"NotModified (GET * If-None-Match)", http.MethodGet, consts.HeaderIfNoneMatch, `*`, http.StatusNotModified},
		{"PreconditionFailed (POST * If-None-Match)", http.MethodPost, consts.HeaderIfNoneMatch, `*`, http.StatusPreconditionFailed},
		{"OK (If-Match)", http.MethodGet, consts.HeaderIfMatch, `W/"abc", "xyz"`, http.StatusOK},
		{"OK (* If-Match)", http.MethodGet, consts.HeaderIfMatch, `*`, http.StatusOK},
		{"PreconditionFailed (If-Match)", http.MethodGet, consts.HeaderIfMatch, `"abc", "`, http.StatusPreconditionFailed},
		{"PreconditionFailed (weak If-Match)", http.MethodGet, consts.HeaderIfMatch, `W/"xyz"`, http.StatusPreconditionFailed},
		{"Bad ETag", http.MethodGet, consts.HeaderIfMatch, `"abc", "a`, http.StatusPreconditionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := newExpect(t, server).Request(tt.method, "/")
			if tt.header != "" {
				req = req.WithHeader(tt.header, tt.value)
			}
			req.Expect().Status(tt.status)
		})
	}
}

func TestServeWithETag(t *testing.T) {
	t.Parallel()

	body := []byte("<svg/>")

	e := echo.New()
	e.GET("/svg", func(c echo.Context) error {
		return ServeWithETag(c, consts.MIMEImageSVG, body)
	})
	e.GET("/json", func(c echo.Context) error {
		return ServeJSONWithETag(c, map[string]any{"b": 1, "a": "x"})
	})
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	t.Run("svg", func(t *testing.T) {
		t.Parallel()
		ex := newExpect(t, server)
		res := ex.GET("/svg").
			Expect().
			Status(http.StatusOK).
			HasContentType(consts.MIMEImageSVG)
		res.Header(consts.HeaderETag).IsEqual(ETag(body))
		res.Body().IsEqual(string(body))

		ex.GET("/svg").
			WithHeader(consts.HeaderIfNoneMatch, ETag(body)).
			Expect().
			Status(http.StatusNotModified).
			Body().IsEmpty()
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()
		newExpect(t, server).GET("/json").
			Expect().
			Status(http.StatusOK).
			HasContentType(echo.MIMEApplicationJSON).
			Body().IsEqual(`{"a":"x","b":1}`)
	})
}
