package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/neatar/neatar/router/extension"
	"github.com/neatar/neatar/service/avatar"
	"github.com/neatar/neatar/utils/identicon"
)

const (
	testMaxHalfSize   = 256
	testSeedBodyLimit = 64
)

// newServer 指定したManagerでテスト用サーバーを立てます
func newServer(t *testing.T, m avatar.Manager) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = extension.ErrorHandler(zap.NewNop())
	e.Use(extension.Wrap())

	h := &Handlers{
		Avatar:        m,
		Logger:        zap.NewNop(),
		Version:       "version",
		Revision:      "revision",
		MaxHalfSize:   testMaxHalfSize,
		SeedBodyLimit: testSeedBodyLimit,
	}
	h.Setup(e.Group("/api"))

	s := httptest.NewServer(e)
	t.Cleanup(s.Close)
	return s
}

// Setup 実際のManagerを使ったテスト用サーバーを立てます
func Setup(t *testing.T) *httptest.Server {
	t.Helper()

	m, err := avatar.NewManager(avatar.Config{
		HalfSize:    identicon.DefaultHalfSize,
		MaxHalfSize: testMaxHalfSize,
		CacheSize:   64,
		CacheTTL:    time.Minute,
	}, zap.NewNop())
	require.NoError(t, err)
	return newServer(t, m)
}

// R リクエストテスターを作成します
func R(t *testing.T, server *httptest.Server) *httpexpect.Expect {
	t.Helper()
	return httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  server.URL,
		Reporter: httpexpect.NewAssertReporter(t),
		Printers: []httpexpect.Printer{
			httpexpect.NewCurlPrinter(t),
			httpexpect.NewDebugPrinter(t, false),
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
