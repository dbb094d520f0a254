package cmd

import (
	"fmt"
	"time"

	"cloud.google.com/go/profiler"
	vd "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/neatar/neatar/router"
	"github.com/neatar/neatar/service/avatar"
	"github.com/neatar/neatar/utils/identicon"
)

// Config 設定
type Config struct {
	// DevMode 開発モードかどうか (default: false)
	DevMode bool `mapstructure:"dev" yaml:"dev"`
	// Pprof pprofを有効にするかどうか (default: false)
	Pprof bool `mapstructure:"pprof" yaml:"pprof"`
	// LogLevel ログの最低レベル (default: info)
	LogLevel string `mapstructure:"logLevel" yaml:"logLevel"`

	// Port サーバーポート番号 (default: 3000)
	Port int `mapstructure:"port" yaml:"port"`
	// Gzip レスポンスのGZIP圧縮を有効にするかどうか (default: true)
	Gzip bool `mapstructure:"gzip" yaml:"gzip"`
	// GzipLevel GZIP圧縮レベル (default: -1)
	GzipLevel int `mapstructure:"gzipLevel" yaml:"gzipLevel"`
	// ShutdownTimeout シャットダウンを待つ秒数 (default: 10)
	ShutdownTimeout int `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
	// SeedBodyLimit POSTで受け付けるシードの最大バイト数 (default: 65536)
	SeedBodyLimit int64 `mapstructure:"seedBodyLimit" yaml:"seedBodyLimit"`

	// AccessLog HTTPアクセスログ設定
	AccessLog struct {
		// Enabled 有効かどうか (default: true)
		Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	} `mapstructure:"accessLog" yaml:"accessLog"`

	// RateLimit IPアドレスごとのレート制限設定
	RateLimit struct {
		// Rate 毎秒のリクエスト数。0は無制限 (default: 20)
		Rate float64 `mapstructure:"rate" yaml:"rate"`
		// Burst 瞬間的に許容するリクエスト数 (default: 40)
		Burst int `mapstructure:"burst" yaml:"burst"`
	} `mapstructure:"rateLimit" yaml:"rateLimit"`

	// Identicon 画像生成設定
	Identicon struct {
		// HalfSize デフォルトの大円の半径。8以上 (default: 32)
		HalfSize int `mapstructure:"halfSize" yaml:"halfSize"`
		// MaxHalfSize 指定可能な大円の半径の最大値 (default: 1024)
		MaxHalfSize int `mapstructure:"maxHalfSize" yaml:"maxHalfSize"`
	} `mapstructure:"identicon" yaml:"identicon"`

	// Cache 生成画像のキャッシュ設定
	Cache struct {
		// Size キャッシュする画像の数 (default: 512)
		Size int `mapstructure:"size" yaml:"size"`
		// TTL キャッシュの有効期限(秒) (default: 3600)
		TTL int `mapstructure:"ttl" yaml:"ttl"`
	} `mapstructure:"cache" yaml:"cache"`

	// GCP Google Cloud Platform設定
	GCP struct {
		// ServiceAccount サービスアカウント設定
		ServiceAccount struct {
			// ProjectID Google Cloud Console プロジェクトID
			ProjectID string `mapstructure:"projectId" yaml:"projectId"`
			// File クレデンシャルファイル
			File string `mapstructure:"file" yaml:"file"`
		} `mapstructure:"serviceAccount" yaml:"serviceAccount"`

		// Stackdriver Stackdriver設定
		Stackdriver struct {
			// Profiler Stackdriver Profiler設定
			Profiler struct {
				// Enabled 有効かどうか
				Enabled bool `mapstructure:"enabled" yaml:"enabled"`
			} `mapstructure:"profiler" yaml:"profiler"`
		} `mapstructure:"stackdriver" yaml:"stackdriver"`
	} `mapstructure:"gcp" yaml:"gcp"`
}

// Configのデフォルト値設定
func init() {
	viper.SetDefault("dev", false)
	viper.SetDefault("pprof", false)
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("port", 3000)
	viper.SetDefault("gzip", true)
	viper.SetDefault("gzipLevel", -1)
	viper.SetDefault("shutdownTimeout", 10)
	viper.SetDefault("seedBodyLimit", 64*1024)
	viper.SetDefault("accessLog.enabled", true)
	viper.SetDefault("rateLimit.rate", 20)
	viper.SetDefault("rateLimit.burst", 40)
	viper.SetDefault("identicon.halfSize", 32)
	viper.SetDefault("identicon.maxHalfSize", 1024)
	viper.SetDefault("cache.size", 512)
	viper.SetDefault("cache.ttl", 60*60)
	viper.SetDefault("gcp.serviceAccount.projectId", "")
	viper.SetDefault("gcp.serviceAccount.file", "")
	viper.SetDefault("gcp.stackdriver.profiler.enabled", false)
}

// Validate 設定値を検証します
func (c Config) Validate() error {
	return vd.ValidateStruct(&c,
		vd.Field(&c.LogLevel, vd.By(func(value interface{}) error {
			_, err := zapcore.ParseLevel(value.(string))
			return err
		})),
		vd.Field(&c.Port, vd.Required, vd.Min(1), vd.Max(65535)),
		vd.Field(&c.GzipLevel, vd.Min(-1), vd.Max(9)),
		vd.Field(&c.ShutdownTimeout, vd.Min(0)),
		vd.Field(&c.SeedBodyLimit, vd.Required, vd.Min(int64(1))),
		vd.Field(&c.RateLimit, vd.By(func(interface{}) error {
			return vd.ValidateStruct(&c.RateLimit,
				vd.Field(&c.RateLimit.Rate, vd.Min(0.0)),
				vd.Field(&c.RateLimit.Burst, vd.Min(0)),
			)
		})),
		vd.Field(&c.Identicon, vd.By(func(interface{}) error {
			return vd.ValidateStruct(&c.Identicon,
				vd.Field(&c.Identicon.HalfSize, vd.Required, vd.Min(identicon.MinHalfSize), vd.Max(c.Identicon.MaxHalfSize)),
				vd.Field(&c.Identicon.MaxHalfSize, vd.Required, vd.Min(identicon.MinHalfSize)),
			)
		})),
		vd.Field(&c.Cache, vd.By(func(interface{}) error {
			return vd.ValidateStruct(&c.Cache,
				vd.Field(&c.Cache.Size, vd.Required, vd.Min(1)),
				vd.Field(&c.Cache.TTL, vd.Required, vd.Min(1)),
			)
		})),
	)
}

func initStackdriverProfiler(c *Config) error {
	return profiler.Start(profiler.Config{
		Service:        "neatar",
		ServiceVersion: fmt.Sprintf("%s.%s", Version, Revision),
		ProjectID:      c.GCP.ServiceAccount.ProjectID,
	}, option.WithCredentialsFile(c.GCP.ServiceAccount.File))
}

func provideAvatarConfig(c *Config) avatar.Config {
	return avatar.Config{
		HalfSize:    c.Identicon.HalfSize,
		MaxHalfSize: c.Identicon.MaxHalfSize,
		CacheSize:   c.Cache.Size,
		CacheTTL:    time.Duration(c.Cache.TTL) * time.Second,
	}
}

func provideRouterConfig(c *Config) *router.Config {
	return &router.Config{
		Development:   c.DevMode,
		Version:       Version,
		Revision:      Revision,
		AccessLogging: c.AccessLog.Enabled,
		Gzipped:       c.Gzip,
		GzipLevel:     c.GzipLevel,
		RateLimit:     rate.Limit(c.RateLimit.Rate),
		RateBurst:     c.RateLimit.Burst,
		MaxHalfSize:   c.Identicon.MaxHalfSize,
		SeedBodyLimit: c.SeedBodyLimit,
	}
}
