package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// MaxUploadBytes caps the request body accepted by the HTTP server (16 MiB).
const MaxUploadBytes = 16 * 1024 * 1024

// allowedExtensions lists the image types accepted by the upload endpoint, lowercase and without dot.
var allowedExtensions = []string{"png", "jpg", "jpeg", "gif"}

// DatabaseConfig holds PostgreSQL settings for the optional food catalog.
// The catalog is disabled when Host is empty.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a catalog database has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// UploadConfig describes where uploads go and what is accepted.
// MaxBytes and AllowedExtensions are fixed at build time.
type UploadConfig struct {
	Dir               string
	Backend           string
	MaxBytes          int
	AllowedExtensions []string
}

// Allows reports whether ext (without the leading dot) is an accepted image type.
// The comparison is case-insensitive.
func (u UploadConfig) Allows(ext string) bool {
	for _, a := range u.AllowedExtensions {
		if strings.EqualFold(a, ext) {
			return true
		}
	}
	return false
}

// OpenFoodFactsConfig configures the remote food database.
type OpenFoodFactsConfig struct {
	BaseURL    string
	Locale     string
	UserAgent  string
	TimeoutSec int
}

// Timeout returns the outbound client timeout.
func (c OpenFoodFactsConfig) Timeout() time.Duration {
	if c.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSec) * time.Second
}

// AppConfig is the centralized configuration struct for the application.
// It is built once at startup and passed by value to every component that needs it.
type AppConfig struct {
	AppHost       string
	Port          string
	Timezone      string
	Upload        UploadConfig
	OpenFoodFacts OpenFoodFactsConfig
	Database      DatabaseConfig
	MinIO         MinIOConfig
}

// Location resolves Timezone, falling back to UTC when it is empty or unknown.
func (c *AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	exts := make([]string, len(allowedExtensions))
	copy(exts, allowedExtensions)

	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:5000"),
		Port:     getEnv("PORT", "5000"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		Upload: UploadConfig{
			Dir:               getEnv("UPLOAD_DIR", "static/uploads"),
			Backend:           getEnv("STORAGE_BACKEND", "local"),
			MaxBytes:          MaxUploadBytes,
			AllowedExtensions: exts,
		},
		OpenFoodFacts: OpenFoodFactsConfig{
			BaseURL:    getEnv("OFF_BASE_URL", "https://world.openfoodfacts.org"),
			Locale:     getEnv("OFF_LOCALE", "world"),
			UserAgent:  getEnv("OFF_USER_AGENT", "nutriscan/1.0"),
			TimeoutSec: getEnvInt("OFF_TIMEOUT_SEC", 10),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
