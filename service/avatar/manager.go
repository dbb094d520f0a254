//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE
package avatar

import (
	"errors"
	"fmt"
	"time"

	"github.com/neatar/neatar/utils/media"
)

var (
	// ErrInvalidHalfSize 指定された大きさが範囲外です
	ErrInvalidHalfSize = errors.New("invalid half size")
	// ErrInvalidFormat 未対応の出力形式です
	ErrInvalidFormat = errors.New("invalid format")
)

// Format 出力形式
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// Config Managerの設定
type Config struct {
	// HalfSize 大きさを指定しなかった場合の大円の半径
	HalfSize int
	// MaxHalfSize 指定可能な大円の半径の最大値
	MaxHalfSize int
	// CacheSize キャッシュする画像の数
	CacheSize int
	// CacheTTL キャッシュの有効期限
	CacheTTL time.Duration
}

// Media トークン用に梱包したidenticon
type Media struct {
	SVG       string `json:"svg"`
	Media     string `json:"media"`
	DataURI   string `json:"dataUri"`
	MediaHash string `json:"mediaHash"`
	TokenID   string `json:"tokenId"`
}

// NewMedia svgをトークン用に梱包します
func NewMedia(svg string) (*Media, error) {
	meta, err := media.NewMetadata(svg)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata: %w", err)
	}
	return &Media{
		SVG:       svg,
		Media:     meta.Media,
		DataURI:   media.DataURI(svg),
		MediaHash: meta.MediaHash,
		TokenID:   meta.TokenID,
	}, nil
}

// Manager identiconの生成とキャッシュを管理します
type Manager interface {
	// GetSVG シードからidenticonのsvgを取得します
	//
	// halfSizeが0の場合はデフォルトの大きさを使います。
	// halfSizeがidenticon.MinHalfSize未満か最大値を超える場合、ErrInvalidHalfSizeを返します。
	GetSVG(seed []byte, halfSize int) (string, error)
	// GetPNG シードからidenticonのPNG画像を取得します
	//
	// halfSizeの扱いはGetSVGと同じです。
	GetPNG(seed []byte, halfSize int) ([]byte, error)
	// Get 指定した形式でidenticonを取得します
	//
	// 未対応の形式の場合、ErrInvalidFormatを返します。
	Get(seed []byte, halfSize int, format Format) ([]byte, error)
	// GetMedia デフォルトの大きさのidenticonをトークン用に梱包して返します
	GetMedia(seed []byte) (*Media, error)
	// HalfSize デフォルトの大円の半径を返します
	HalfSize() int
}
