package cmd

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // pprof init
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/neatar/neatar/logging"
)

var (
	Version  = "dev"
	Revision = "local"
)

var (
	// configFile 設定ファイルyamlのパス
	configFile string
	// c 設定
	c Config
)

// rootコマンドはダミー。コマンドとしては使用しない
var rootCommand = &cobra.Command{
	Use:           "neatar",
	SilenceUsage:  true,
	// 全コマンド共通の前処理
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// enable pprof http handler
		if c.Pprof {
			go func() { _ = http.ListenAndServe("localhost:6060", nil) }()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCommand.AddCommand(
		serveCommand(),
		generateCommand(),
		confCommand(),
		healthcheckCommand(),
		versionCommand(),
	)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path")

	flags.Bool("dev", false, "development mode")
	bindPFlag(flags, "dev")
	flags.Bool("pprof", false, "expose pprof http interface")
	bindPFlag(flags, "pprof")
}

func initConfig() {
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("NEATAR")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("failed to read config file: %v", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatal(err)
	}
}

// Execute コマンドを実行します
func Execute() error {
	return rootCommand.Execute()
}

func getLogger() *zap.Logger {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		log.Fatalf("invalid log level: %v", err)
	}
	logger, err := logging.New(logging.Config{
		ServiceName:    "neatar",
		ServiceVersion: fmt.Sprintf("%s.%s", Version, Revision),
		Development:    c.DevMode,
		Level:          level,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

// getCLILogger サーバー以外のコマンド用のロガー
func getCLILogger() *zap.Logger {
	logger, err := logging.New(logging.Config{Development: true, Level: zapcore.InfoLevel})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	return logger
}

func bindPFlag(flags *pflag.FlagSet, key string) {
	if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
		panic(err)
	}
}
