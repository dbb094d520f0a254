package v1

import (
	"net/url"

	"github.com/neatar/neatar/utils/seed"
)

// decodeSeed パスパラメータのシードをバイト列に戻します。encodingが空の場合はhexとして扱います
func decodeSeed(s, encoding string) ([]byte, error) {
	enc := seed.Encoding(encoding)
	switch enc {
	case "":
		enc = seed.Hex
	case seed.UTF8:
		if u, err := url.PathUnescape(s); err == nil {
			s = u
		}
	}
	return seed.Decode(s, enc)
}
