package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Embedding EmbeddingConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
	Log       LogConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type EmbeddingConfig struct {
	Model             string
	URL               string
	Dimension         int
	MaxSequenceLength int
	BatchSize         int
	MaxWorkers        int
	CacheTTL          time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string
}

// Enabled reports whether a job catalog database was configured. The
// catalog endpoint is optional; without a database it answers 503.
func (c DatabaseConfig) Enabled() bool {
	return c.DBHost != "" && c.DBName != "" && c.DBUser != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type AuthConfig struct {
	AccessSecret string
}

func (c AuthConfig) Enabled() bool {
	return c.AccessSecret != ""
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (Config, error) {
	// Missing .env is fine; real deployments use the environment.
	_ = godotenv.Load()

	cfg := Config{
		App: AppConfig{
			AppName:     getEnv("APP_NAME", "career-engine"),
			Environment: getEnv("ENVIRONMENT", "development"),
			HTTPPort:    getEnv("HTTP_PORT", "3002"),
		},
		Embedding: EmbeddingConfig{
			Model:             getEnv("EMBEDDING_MODEL", "all-MiniLM-L6-v2"),
			URL:               getEnv("EMBEDDING_URL", "http://localhost:8080"),
			Dimension:         getEnvInt("EMBEDDING_DIMENSION", 384),
			MaxSequenceLength: getEnvInt("MAX_SEQUENCE_LENGTH", 256),
			BatchSize:         getEnvInt("BATCH_SIZE", 32),
			MaxWorkers:        getEnvInt("MAX_WORKERS", 4),
			CacheTTL:          time.Duration(getEnvInt("CACHE_TTL", 3600)) * time.Second,
		},
		Database: DatabaseConfig{
			DBHost:     getEnv("DB_HOST", ""),
			DBPort:     getEnv("DB_PORT", "5432"),
			DBName:     getEnv("DB_NAME", ""),
			DBUser:     getEnv("DB_USER", ""),
			DBPassword: getEnv("DB_PASSWORD", ""),
			DBSSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			AccessSecret: getEnv("AUTH_ACCESS_SECRET", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var problems []string
	if strings.TrimSpace(c.App.HTTPPort) == "" {
		problems = append(problems, "HTTP_PORT must not be empty")
	}
	if c.Embedding.Dimension <= 0 {
		problems = append(problems, "EMBEDDING_DIMENSION must be positive")
	}
	if c.Embedding.BatchSize <= 0 {
		problems = append(problems, "BATCH_SIZE must be positive")
	}
	if c.Embedding.MaxWorkers <= 0 {
		problems = append(problems, "MAX_WORKERS must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
