package consts

const (
	ParamSeed = "seed"

	QueryEncoding = "encoding"
	QuerySize     = "size"
	QueryFormat   = "format"
)

const (
	MIMEImageSVG = "image/svg+xml"
	MIMEImagePNG = "image/png"
)
