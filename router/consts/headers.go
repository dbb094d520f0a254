package consts

const (
	HeaderCacheControl = "Cache-Control"
	HeaderETag         = "ETag"
	HeaderIfMatch      = "If-Match"
	HeaderIfNoneMatch  = "If-None-Match"
	HeaderVersion      = "X-NEATAR-VERSION"
	HeaderTokenID      = "X-NEATAR-Token-Id"
)
