// Package config builds the process-wide configuration struct once at
// startup. Business logic never reads the ambient environment; everything
// is passed down explicitly through constructors.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DevJwtSecret is only ever used when APP_ENV=development and JWT_SECRET
// is unset. Production startup fails instead of falling back.
const DevJwtSecret = "vmss-dev-secret-do-not-use-in-production"

var ErrMissingJwtSecret = errors.New("JWT_SECRET must be set outside development")

type Config struct {
	Env      string
	HTTPPort string
	LogLevel string
	LogJSON  bool

	JwtSecret string
	// JwtSecretIsFallback flags the insecure development key so main can
	// log a warning at startup.
	JwtSecretIsFallback bool
	JwtTTL              time.Duration

	Pg     PgConfig
	S3     S3Config
	Upload UploadConfig
}

type PgConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Dbname   string
	SSLMode  string
}

type S3Config struct {
	Region        string
	Endpoint      string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	// Folder is the fixed logical namespace every uploaded object lives
	// under.
	Folder         string
	RequestTimeout time.Duration
}

type UploadConfig struct {
	MaxFileSizeBytes int64
	MaxFilesPerBatch int
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from the environment. A .env file is loaded if
// present (local dev); deployments supply real environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("APP_ENV", "development"),
		HTTPPort: getEnv("PORT", "5000"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogJSON:  getEnvAsBool("LOG_JSON", false),

		JwtSecret: os.Getenv("JWT_SECRET"),
		JwtTTL:    getEnvAsDuration("JWT_TTL", 7*24*time.Hour),

		Pg: PgConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnvAsInt("PG_PORT", 5432),
			User:     getEnv("PG_USER", "postgres"),
			Password: getEnv("PG_PASSWORD", ""),
			Dbname:   getEnv("PG_DBNAME", "vmss"),
			SSLMode:  getEnv("PG_SSLMODE", "disable"),
		},
		S3: S3Config{
			Region:         getEnv("S3_REGION", "us-east-1"),
			Endpoint:       getEnv("S3_ENDPOINT", ""),
			Bucket:         getEnv("S3_BUCKET", "vmss-media"),
			AccessKey:      getEnv("S3_ACCESS_KEY", ""),
			SecretKey:      getEnv("S3_SECRET_KEY", ""),
			PublicBaseURL:  getEnv("S3_PUBLIC_BASE_URL", ""),
			Folder:         getEnv("S3_FOLDER", "vmss"),
			RequestTimeout: getEnvAsDuration("S3_REQUEST_TIMEOUT", 30*time.Second),
		},
		Upload: UploadConfig{
			MaxFileSizeBytes: getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 5*1024*1024),
			MaxFilesPerBatch: getEnvAsInt("UPLOAD_MAX_FILES", 10),
		},
	}

	if cfg.JwtSecret == "" {
		if !cfg.Development() {
			return nil, ErrMissingJwtSecret
		}
		cfg.JwtSecret = DevJwtSecret
		cfg.JwtSecretIsFallback = true
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
