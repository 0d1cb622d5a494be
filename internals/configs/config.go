package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var (
	JWTSecret        string
	JWTRefreshSecret string
	GoogleClientID   string
	AppTimezone      string
	CorsOrigins      []string
)

const defaultTimezone = "Asia/Jakarta"

var defaultCorsOrigins = []string{
	"http://localhost:5173",
	"http://localhost:3000",
	"http://127.0.0.1:5500",
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Warn().Msg("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Info().Msg("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Info().Msg("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	AppTimezone = GetEnv("APP_TIMEZONE", defaultTimezone)
	CorsOrigins = splitCSV(GetEnv("CORS_ORIGINS"))
	if len(CorsOrigins) == 0 {
		CorsOrigins = defaultCorsOrigins
	}

	if JWTSecret == "" {
		log.Error().Msg("❌ JWT_SECRET belum diset!")
	} else {
		log.Info().Msg("✅ JWT_SECRET berhasil dimuat.")
	}
	if JWTRefreshSecret == "" {
		log.Error().Msg("❌ JWT_REFRESH_SECRET belum diset!")
	}
	if GoogleClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID belum diset, login Google nonaktif")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
