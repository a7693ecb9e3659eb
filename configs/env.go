package configs

import (
	"os"
	"strconv"
	"strings"

	"rehber.link/configs/configslog"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// LoadEnv .env dosyasını (varsa) process environment'a yükler.
// Zaten tanımlı değişkenlerin üzerine yazılmaz.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		configslog.SLog.Debug(".env dosyası bulunamadı, sadece ortam değişkenleri kullanılacak")
	}
}

func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz sayısal ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", fallback))
		return fallback
	}
	return v
}

func GetEnvBool(key string, fallback bool) bool {
	raw := GetEnv(key, "")
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		configslog.Log.Warn("Geçersiz boolean ortam değişkeni, varsayılan kullanılıyor",
			zap.String("key", key), zap.String("value", raw), zap.Bool("default", fallback))
		return fallback
	}
	return v
}
