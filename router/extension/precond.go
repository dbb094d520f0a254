package extension

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/textproto"
	"strings"

	jsonIter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/neatar/neatar/router/consts"
)

const weakPrefix = "W/"

type condResult int

const (
	condNone condResult = iota
	condTrue
	condFalse
)

func scanETag(s string) (eTag string, remain string) {
	s = textproto.TrimString(s)
	start := 0
	if strings.HasPrefix(s, weakPrefix) {
		start = 2
	}
	if len(s[start:]) < 2 || s[start] != '"' {
		return "", ""
	}
	for i := start + 1; i < len(s); i++ {
		if s[i] == '"' {
			return s[:i+1], s[i+1:]
		}
	}
	return "", ""
}

func eTagStrongMatch(a, b string) bool {
	return a == b && a != "" && a[0] == '"'
}

func eTagWeakMatch(a, b string) bool {
	return strings.TrimPrefix(a, weakPrefix) == strings.TrimPrefix(b, weakPrefix)
}

// matchETags ヘッダー値のETagリストを走査し、いずれかがmatchを満たすかを返します
func matchETags(list, current string, match func(a, b string) bool) condResult {
	if list == "" {
		return condNone
	}
	for {
		list = textproto.TrimString(list)
		if len(list) == 0 {
			break
		}
		if list[0] == ',' {
			list = list[1:]
			continue
		}
		if list[0] == '*' {
			return condTrue
		}
		eTag, remain := scanETag(list)
		if eTag == "" {
			break
		}
		if match(eTag, current) {
			return condTrue
		}
		list = remain
	}
	return condFalse
}

func writeNotModified(c echo.Context) error {
	h := c.Response().Header()
	h.Del(echo.HeaderContentType)
	h.Del(echo.HeaderContentLength)
	return c.NoContent(http.StatusNotModified)
}

// CheckPreconditions レスポンスに設定済みのETagを元にHTTPリクエストの事前条件を検査します
//
// doneがtrueの場合、レスポンスは既に書き込まれています。
func CheckPreconditions(c echo.Context) (done bool, err error) {
	req := c.Request().Header
	current := c.Response().Header().Get(consts.HeaderETag)

	if matchETags(req.Get(consts.HeaderIfMatch), current, eTagStrongMatch) == condFalse {
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	if matchETags(req.Get(consts.HeaderIfNoneMatch), current, eTagWeakMatch) == condTrue {
		if m := c.Request().Method; m == http.MethodGet || m == http.MethodHead {
			return true, writeNotModified(c)
		}
		return true, c.NoContent(http.StatusPreconditionFailed)
	}

	return false, nil
}

// ETag bytesの強いETagを返します
func ETag(bytes []byte) string {
	sum := sha256.Sum256(bytes)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

var eTagJSON = jsonIter.Config{
	EscapeHTML:                    false,
	MarshalFloatWith6Digits:       true,
	ObjectFieldMustBeSimpleString: true,
	// 順番が一致しないとETagが一致しないのでソートを有効にする
	SortMapKeys: true,
}.Froze()

// ServeJSONWithETag ETagを付与してJSONを返します。304を返せるときは304を返します
func ServeJSONWithETag(c echo.Context, i any) error {
	b, err := eTagJSON.Marshal(i)
	if err != nil {
		return err
	}
	return ServeWithETag(c, echo.MIMEApplicationJSON, b)
}

// ServeWithETag ETagを付与して返します。304を返せるときは304を返します
func ServeWithETag(c echo.Context, contentType string, bytes []byte) error {
	c.Response().Header().Set(consts.HeaderETag, ETag(bytes))

	if done, err := CheckPreconditions(c); done {
		return err
	}
	return c.Blob(http.StatusOK, contentType, bytes)
}
