package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log yapılandırılmış (structured) logger.
// SLog printf tarzı kullanım için sugared logger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger uygulama logger'ını başlatır.
// APP_ENV=production ise JSON, aksi halde renkli console encoder kullanılır.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logger kurulamazsa uygulama devam edemez.
		panic("logger başlatılamadı: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

// Sync buffer'daki logları flush eder. main'de defer ile çağrılmalı.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
