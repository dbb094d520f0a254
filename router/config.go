package router

import (
	"golang.org/x/time/rate"
)

// Config APIサーバー設定
type Config struct {
	// Development 開発モードかどうか
	Development bool
	// Version サーバーバージョン
	Version string
	// Revision サーバーリビジョン
	Revision string
	// AccessLogging アクセスログを記録するかどうか
	AccessLogging bool
	// Gzipped レスポンスをGzip圧縮するかどうか
	Gzipped bool
	// GzipLevel 圧縮レベル
	GzipLevel int
	// RateLimit IPアドレスごとの毎秒のリクエスト数。0の場合は制限しません
	RateLimit rate.Limit
	// RateBurst 瞬間的に許容するリクエスト数
	RateBurst int
	// MaxHalfSize クエリで指定可能な大円の半径の最大値
	MaxHalfSize int
	// SeedBodyLimit POSTで受け付けるシードの最大バイト数
	SeedBodyLimit int64
}
