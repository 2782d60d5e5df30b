package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values.
// Sensitive data should never have defaults inside code and must be provided
// via a .env file or the environment.
type AppConfig struct {
	AppPort     string
	SecretKey   string
	DatabaseURL string
	// Accounts allowed through the post-management guard. Empty list keeps the
	// historical behavior where any logged-in user may manage posts.
	AdminEmails []string
	// Gin framework configuration
	GinMode      string
	TemplateGlob string
	StaticDir    string
	// Redis for the server-side session registry; sessions fall back to an
	// in-process store when RedisHost is empty.
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string
	// Logging configuration
	LogLevel      string
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
	LogCompress   bool
	// Mail sender credentials. Loaded for parity with the deployment
	// environment; no handler sends mail.
	SenderEmail    string
	SenderPassword string
}

var cfg AppConfig
var loaded bool

// Load reads the application configuration from a .env file (when present)
// and the environment. It should be called once during boot.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment only")
	}

	cfg = AppConfig{
		AppPort:        getEnv("APP_PORT", "8080"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		DatabaseURL:    getEnv("DATABASE_URL", "sqlite://blog.db"),
		AdminEmails:    splitList(os.Getenv("ADMIN_EMAILS")),
		GinMode:        getEnv("GIN_MODE", "release"),
		TemplateGlob:   getEnv("TEMPLATE_GLOB", "templates/*.html"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getEnvInt("REDIS_PORT", 6379),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogPath:        os.Getenv("LOG_PATH"),
		LogMaxSizeMB:   getEnvInt("LOG_MAX_SIZE_MB", 100),
		LogMaxBackups:  getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays:  getEnvInt("LOG_MAX_AGE_DAYS", 7),
		LogCompress:    getEnvBool("LOG_COMPRESS", false),
		SenderEmail:    os.Getenv("SENDER_EMAIL"),
		SenderPassword: os.Getenv("MY_PASSWORD"),
	}

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set in environment variables")
	}

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// IsAdmin reports whether the given email passes the post-management guard.
// With no configured admin list every identity passes.
func (c AppConfig) IsAdmin(email string) bool {
	if len(c.AdminEmails) == 0 {
		return true
	}
	for _, e := range c.AdminEmails {
		if strings.EqualFold(e, email) {
			return true
		}
	}
	return false
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
