package configsdatabase

import (
	"fmt"
	"time"

	"rehber.link/configs"
	"rehber.link/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	TimeZone string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     configs.GetEnv("DB_HOST", "localhost"),
		Port:     configs.GetEnvInt("DB_PORT", 5432),
		User:     configs.GetEnv("DB_USERNAME", "postgres"),
		Password: configs.GetEnv("DB_PASSWORD", ""),
		Name:     configs.GetEnv("DB_DATABASE", "rehber"),
		SSLMode:  configs.GetEnv("DB_SSL_MODE", "disable"),
		TimeZone: configs.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.TimeZone)
}

// InitDB PostgreSQL bağlantısını açar. Bağlantı kurulamazsa uygulama durur.
func InitDB() {
	cfg := LoadDatabaseConfig()

	logLevel := logger.Warn
	if configs.GetEnv("APP_ENV", "development") == "development" {
		logLevel = logger.Info
	}

	var err error
	db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Benzersiz index ihlalleri gorm.ErrDuplicatedKey olarak döner.
		TranslateError: true,
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı",
			zap.String("host", cfg.Host), zap.Int("port", cfg.Port), zap.String("database", cfg.Name), zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Fatal("Veritabanı bağlantı havuzu alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetConnMaxLifetime(time.Hour)

	configslog.SLog.Infof("Veritabanı bağlantısı kuruldu: %s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
}

func GetDB() *gorm.DB {
	if db == nil {
		configslog.Log.Fatal("Veritabanı başlatılmadı, önce InitDB çağrılmalı")
	}
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılırken hata", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı")
}
