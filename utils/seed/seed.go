package seed

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

// Encoding 文字列で渡されるシードのエンコーディング
type Encoding string

const (
	Hex    Encoding = "hex"
	UTF8   Encoding = "utf8"
	Base64 Encoding = "base64"
)

// ErrUnknownEncoding 未対応のエンコーディングです
var ErrUnknownEncoding = errors.New("unknown encoding")

// Encodings 対応しているエンコーディングの一覧
func Encodings() []Encoding {
	return []Encoding{Hex, UTF8, Base64}
}

// Decode 文字列をencodingに従ってシードのバイト列に戻します
//
// base64はURLセーフなアルファベット(パディング省略可)と標準のアルファベットの両方を受け付けます。
func Decode(s string, encoding Encoding) ([]byte, error) {
	switch encoding {
	case Hex:
		return hex.DecodeString(s)
	case UTF8:
		return []byte(s), nil
	case Base64:
		if b, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "=")); err == nil {
			return b, nil
		}
		return base64.StdEncoding.DecodeString(s)
	default:
		return nil, ErrUnknownEncoding
	}
}
