package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"kart.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

// ConnectDB PostgreSQL bağlantısını kurar ve havuz ayarlarını yapar.
// DSN, DATABASE_URL env değişkeninden veya tekil DB_* değişkenlerinden okunur.
func ConnectDB() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			envOrDefault("DB_HOST", "localhost"),
			envOrDefault("DB_PORT", "5432"),
			envOrDefault("DB_USER", "postgres"),
			os.Getenv("DB_PASSWORD"),
			envOrDefault("DB_NAME", "kartlink"),
			envOrDefault("DB_SSLMODE", "disable"),
		)
	}

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	conn, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		configslog.Log.Error("Veritabanına bağlanılamadı", zap.Error(err))
		return err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
	return nil
}

// GetDB mevcut gorm bağlantısını döndürür. ConnectDB çağrılmadan kullanılmamalı.
func GetDB() *gorm.DB {
	return db
}

// CloseDB bağlantı havuzunu kapatır. Migration CLI ve testlerde kullanılır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
