package config

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int

	DefaultUserEmail string
	DefaultUserName  string

	BoardCacheEnabled    bool
	RedisAddr            string
	BoardCacheKey        string
	BoardCacheTTLSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
		DefaultUserEmail:       getEnv("DEFAULT_USER_EMAIL", "stefan@paintingbusiness.com"),
		DefaultUserName:        getEnv("DEFAULT_USER_NAME", "Stefan"),
		BoardCacheEnabled:      getEnvAsBool("BOARD_CACHE_ENABLED", false),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		BoardCacheKey:          getEnv("BOARD_CACHE_KEY", "board_snapshot"),
		BoardCacheTTLSeconds:   getEnvAsInt("BOARD_CACHE_TTL_SECONDS", 30),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
	if cfg.DefaultUserEmail == "" {
		log.Fatal("DEFAULT_USER_EMAIL must not be empty")
	}
	if cfg.BoardCacheEnabled && cfg.BoardCacheTTLSeconds <= 0 {
		log.Fatal("BOARD_CACHE_TTL_SECONDS must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Fatalf("invalid boolean value for %s", key)
		}
		return b
	}
	return defaultVal
}
