package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/neatar/neatar/router/consts"
	"github.com/neatar/neatar/router/extension"
	"github.com/neatar/neatar/router/extension/herror"
	"github.com/neatar/neatar/service/avatar"
	"github.com/neatar/neatar/utils/identicon"
	"github.com/neatar/neatar/utils/seed"
)

// identiconは入力に対して不変なので長期間キャッシュさせる
const identiconCacheControl = "public, max-age=31536000, immutable"

var encodings = lo.Map(seed.Encodings(), func(e seed.Encoding, _ int) any { return string(e) })

type identiconQuery struct {
	Encoding string
	Size     int
	Format   string
}

func (h *Handlers) bindIdenticonQuery(c echo.Context) (*identiconQuery, error) {
	var q identiconQuery
	if err := echo.QueryParamsBinder(c).
		String(consts.QueryEncoding, &q.Encoding).
		Int(consts.QuerySize, &q.Size).
		String(consts.QueryFormat, &q.Format).
		BindError(); err != nil {
		var be *echo.BindingError
		if errors.As(err, &be) {
			return nil, herror.BadRequest(fmt.Sprintf("invalid query parameter: %s", be.Field))
		}
		return nil, herror.BadRequest(err)
	}
	if err := vd.ValidateStruct(&q,
		vd.Field(&q.Encoding, vd.In(encodings...)),
		vd.Field(&q.Size, vd.Min(identicon.MinHalfSize), vd.Max(h.MaxHalfSize)),
		vd.Field(&q.Format, vd.In(string(avatar.FormatSVG), string(avatar.FormatPNG))),
	); err != nil {
		if e, ok := err.(vd.InternalError); ok {
			return nil, herror.InternalServerError(e.InternalError())
		}
		return nil, herror.BadRequest(err)
	}
	if len(q.Format) == 0 {
		q.Format = string(avatar.FormatSVG)
	}
	return &q, nil
}

// bindMediaQuery /mediaはデフォルトの大きさのsvgのみを扱うため、encoding以外のクエリを受け付けません
func (h *Handlers) bindMediaQuery(c echo.Context) (string, error) {
	params := c.QueryParams()
	for _, k := range []string{consts.QuerySize, consts.QueryFormat} {
		if params.Has(k) {
			return "", herror.BadRequest(fmt.Sprintf("query parameter %s is not supported on this endpoint", k))
		}
	}
	encoding := c.QueryParam(consts.QueryEncoding)
	if err := vd.Validate(encoding, vd.In(encodings...)); err != nil {
		return "", herror.BadRequest(fmt.Sprintf("invalid query parameter: %s: %s", consts.QueryEncoding, err))
	}
	return encoding, nil
}

func (h *Handlers) serveIdenticon(c echo.Context, s []byte, q *identiconQuery) error {
	format := avatar.Format(q.Format)
	b, err := h.Avatar.Get(s, q.Size, format)
	if err != nil {
		switch {
		case errors.Is(err, avatar.ErrInvalidHalfSize), errors.Is(err, avatar.ErrInvalidFormat):
			return herror.BadRequest(err)
		default:
			return herror.InternalServerError(err)
		}
	}

	contentType := consts.MIMEImageSVG
	if format == avatar.FormatPNG {
		contentType = consts.MIMEImagePNG
	}
	c.Response().Header().Set(consts.HeaderCacheControl, identiconCacheControl)
	return extension.ServeWithETag(c, contentType, b)
}

// GetIdenticon GET /identicons/:seed
func (h *Handlers) GetIdenticon(c echo.Context) error {
	q, err := h.bindIdenticonQuery(c)
	if err != nil {
		return err
	}
	s, err := decodeSeed(c.Param(consts.ParamSeed), q.Encoding)
	if err != nil {
		return herror.BadRequest("invalid seed: " + err.Error())
	}
	return h.serveIdenticon(c, s, q)
}

// PostIdenticon POST /identicons
//
// リクエストボディをそのままシードとして扱います。
func (h *Handlers) PostIdenticon(c echo.Context) error {
	q, err := h.bindIdenticonQuery(c)
	if err != nil {
		return err
	}
	s, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return herror.HTTPError(http.StatusRequestEntityTooLarge, "the seed is too long")
		}
		return herror.BadRequest(err)
	}
	return h.serveIdenticon(c, s, q)
}

// GetIdenticonMedia GET /identicons/:seed/media
func (h *Handlers) GetIdenticonMedia(c echo.Context) error {
	encoding, err := h.bindMediaQuery(c)
	if err != nil {
		return err
	}
	s, err := decodeSeed(c.Param(consts.ParamSeed), encoding)
	if err != nil {
		return herror.BadRequest("invalid seed: " + err.Error())
	}

	m, err := h.Avatar.GetMedia(s)
	if err != nil {
		return herror.InternalServerError(err)
	}
	c.Response().Header().Set(consts.HeaderTokenID, m.TokenID)
	c.Response().Header().Set(consts.HeaderCacheControl, identiconCacheControl)
	return extension.ServeJSONWithETag(c, m)
}
