package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
	BackendRedis    = "redis"
)

type Config struct {
	Env                string
	ServerAddr         string
	FrontendOrigin     string
	LogLevel           string
	StorageBackend     string
	DataDir            string
	SQLitePath         string
	PostgresURL        string
	MongoURI           string
	MongoDB            string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	AdminPassword      string
	AdminPasswordHash  string
	ResumePassword     string
	AdminAPIKey        string
	ChromePath         string
	PDFCacheTTLSeconds int
	RateLimitContact   int
	RateLimitWindowSec int
	BrevoAPIKey        string
	BrevoSenderEmail   string
	BrevoSenderName    string
	BrevoSandbox       bool
	OwnerEmail         string
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	dataDir := getEnv("DATA_DIR", "data")

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigin:     getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		StorageBackend:     strings.ToLower(getEnv("STORAGE_BACKEND", BackendFile)),
		DataDir:            dataDir,
		SQLitePath:         getEnv("SQLITE_PATH", filepath.Join(dataDir, "portfolio.db")),
		PostgresURL:        getEnv("POSTGRES_URL", ""),
		MongoURI:           getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:            getEnv("MONGO_DB", "portfolio"),
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		ResumePassword:     getEnv("RESUME_PASSWORD", "admin123"),
		AdminAPIKey:        getEnv("ADMIN_API_KEY", ""),
		ChromePath:         getEnv("CHROME_PATH", ""),
		PDFCacheTTLSeconds: getEnvInt("PDF_CACHE_TTL_SECONDS", 3600),
		RateLimitContact:   getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:   getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:    getEnv("BREVO_SENDER_NAME", ""),
		BrevoSandbox:       getEnvBool("BREVO_SANDBOX", false),
		OwnerEmail:         getEnv("OWNER_EMAIL", ""),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case BackendFile, BackendMemory, BackendSQLite, BackendMongo:
	case BackendPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required for the postgres backend")
		}
	case BackendRedis:
		if c.RedisURL == "" && c.RedisAddr == "" {
			return fmt.Errorf("REDIS_URL or REDIS_ADDR is required for the redis backend")
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

// RedisConfigured reports whether a Redis server is available for caching,
// independently of the storage backend.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisAddr != ""
}
