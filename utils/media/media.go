package media

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

const (
	// MediaTypeSVG svgのメディアタイプ (image/以下)
	MediaTypeSVG = "svg+xml"

	dataImagePrefix = "data:image/"
	base64Marker    = ";base64,"
)

// ErrInvalidMedia メディア文字列の形式が不正です
var ErrInvalidMedia = errors.New("invalid media string")

// Metadata トークンメタデータに記録する画像情報
type Metadata struct {
	// Media "svg+xml;base64,..." 形式の画像
	Media string `json:"media"`
	// MediaHash 画像のSHA-256 (base64)
	MediaHash string `json:"mediaHash"`
	// TokenID 画像のCIDv1
	TokenID string `json:"tokenId"`
	// Copies 発行数
	Copies int `json:"copies"`
}

// PackDataImage svgをbase64エンコードし、"svg+xml;base64,{data}"を返します
func PackDataImage(svg string) string {
	return MediaTypeSVG + base64Marker + base64.StdEncoding.EncodeToString([]byte(svg))
}

// DataURI svgをdata URIにします
func DataURI(svg string) string {
	return dataImagePrefix + PackDataImage(svg)
}

// Unpack PackDataImageまたはDataURIの出力から元のデータを取り出します
func Unpack(media string) ([]byte, error) {
	media = strings.TrimPrefix(media, dataImagePrefix)
	_, payload, ok := strings.Cut(media, base64Marker)
	if !ok {
		return nil, ErrInvalidMedia
	}
	b, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Join(ErrInvalidMedia, err)
	}
	return b, nil
}

// Hash svgのUTF-8バイト列のSHA-256を返します
func Hash(svg string) [sha256.Size]byte {
	return sha256.Sum256([]byte(svg))
}

// EncodedHash svgのSHA-256をbase64で返します
func EncodedHash(svg string) string {
	h := Hash(svg)
	return base64.StdEncoding.EncodeToString(h[:])
}

// TokenID svgのCIDv1 (raw, sha2-256, base32) を返します
func TokenID(svg string) (string, error) {
	mh, err := multihash.Sum([]byte(svg), multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return cid.NewCidV1(cid.Raw, mh).String(), nil
}

// NewMetadata svgからトークンメタデータを生成します
func NewMetadata(svg string) (*Metadata, error) {
	id, err := TokenID(svg)
	if err != nil {
		return nil, err
	}
	return &Metadata{
		Media:     PackDataImage(svg),
		MediaHash: EncodedHash(svg),
		TokenID:   id,
		Copies:    1,
	}, nil
}
