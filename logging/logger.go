package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config ロガーの設定
type Config struct {
	// ServiceName serviceContextに載せるサービス名
	ServiceName string
	// ServiceVersion serviceContextに載せるバージョン
	ServiceVersion string
	// Development trueの場合コンソール向けの出力になります
	Development bool
	// Level 出力する最低レベル
	Level zapcore.Level
}

// New ロガーを生成します
//
// Developmentがfalseの場合、Cloud Logging向けの構造化ログを出力します。
func New(c Config) (*zap.Logger, error) {
	if c.Development {
		return developmentConfig(c.Level).Build()
	}
	return productionConfig(c.Level).Build(zap.WrapCore(func(inner zapcore.Core) zapcore.Core {
		return wrapCore(inner, c.ServiceName, c.ServiceVersion)
	}))
}
