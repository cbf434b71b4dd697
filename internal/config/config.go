package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL connection settings for the metadata store.
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

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// StorageConfig selects and configures the blob backend.
// Root is the directory (or key prefix for MinIO) blobs are written under.
type StorageConfig struct {
	Backend string
	Root    string
	MinIO   MinIOConfig
}

// SessionConfig configures the Badger-backed session cache.
type SessionConfig struct {
	Path     string
	InMemory bool
	TTL      time.Duration
}

// ThumbnailConfig configures job dispatch on the API side and the worker pool.
// MetricsPort is where the worker exposes /metrics and /healthz.
// A running job whose lease has expired is handed out again.
type ThumbnailConfig struct {
	Buffer       int
	Concurrency  int
	PollInterval time.Duration
	MaxAttempts  int
	Lease        time.Duration
	MetricsPort  string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port           string
	Timezone       string
	BackendTimeout time.Duration
	Database       DatabaseConfig
	Storage        StorageConfig
	Session        SessionConfig
	Thumbnail      ThumbnailConfig
}

// Location resolves Timezone, falling back to UTC.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Port:           getEnv("PORT", "5000"),
		Timezone:       getEnv("APP_TIMEZONE", "UTC"),
		BackendTimeout: getEnvMillis("BACKEND_TIMEOUT_MS", 5000),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", "localhost"),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", "postgres"),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", "files_manager"),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "local"),
			Root:    getEnv("FOLDER_PATH", "/tmp/files_manager"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
		},
		Session: SessionConfig{
			Path:     getEnv("SESSION_PATH", "/tmp/files_manager_sessions"),
			InMemory: getEnvBool("SESSION_IN_MEMORY", false),
			TTL:      time.Duration(getEnvInt("SESSION_TTL_SEC", 86400)) * time.Second,
		},
		Thumbnail: ThumbnailConfig{
			Buffer:       getEnvInt("THUMBNAIL_BUFFER", 256),
			Concurrency:  getEnvInt("THUMBNAIL_CONCURRENCY", 4),
			PollInterval: getEnvMillis("THUMBNAIL_POLL_INTERVAL_MS", 1000),
			MaxAttempts:  getEnvInt("THUMBNAIL_MAX_ATTEMPTS", 3),
			Lease:        getEnvMillis("THUMBNAIL_LEASE_MS", 300000),
			MetricsPort:  getEnv("WORKER_METRICS_PORT", "9091"),
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

func getEnvMillis(key string, def int) time.Duration {
	return time.Duration(getEnvInt(key, def)) * time.Millisecond
}
