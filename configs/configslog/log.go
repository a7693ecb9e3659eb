package configslog

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

func init() {
	// Paketler InitLogger çağrılmadan da loglayabilsin diye.
	Log = zap.NewNop()
	SLog = Log.Sugar()
}

// InitLogger APP_ENV ve LOG_LEVEL değerlerine göre global logger'ları kurar.
func InitLogger() {
	var cfg zap.Config
	if strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		parsed, err := zapcore.ParseLevel(lvl)
		if err == nil {
			cfg.Level = zap.NewAtomicLevelAt(parsed)
		}
	}

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		panic("logger could not be built: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger buffer'daki logları yazar.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
