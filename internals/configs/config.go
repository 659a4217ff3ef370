package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret  string
	JWTExpires time.Duration
	UploadDir  string
	AppEnv     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No se encontró archivo .env, usando variables del sistema")
	} else {
		log.Println("✅ Archivo .env cargado")
	}

	JWTSecret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET no está definido; los endpoints autenticados responderán 500")
	} else {
		log.Println("✅ JWT_SECRET cargado")
	}

	JWTExpires = 8 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("JWT_EXPIRES")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			JWTExpires = d
		} else {
			log.Printf("⚠️ JWT_EXPIRES inválido (%q), usando 8h", raw)
		}
	}

	UploadDir = GetEnv("UPLOAD_DIR", "uploads")
	AppEnv = GetEnv("APP_ENV", "development")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction: en producción los errores internos no exponen detalle crudo.
func IsProduction() bool {
	return strings.EqualFold(AppEnv, "production")
}
