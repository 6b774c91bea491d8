package initializers

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        int
	APIBaseURL  string
	APITimeout  time.Duration
	TokenDir    string
	LogLevel    string
	AppEnv      string
	CORSOrigins []string
}

func LoadConfig() Config {
	return Config{
		Port:        getEnvInt("PORT", 8080),
		APIBaseURL:  getEnv("SHOP_API_URL", "http://localhost:8081"),
		APITimeout:  time.Duration(getEnvInt("SHOP_API_TIMEOUT_SECONDS", 30)) * time.Second,
		TokenDir:    getEnv("TOKEN_DIR", ".storefront"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AppEnv:      getEnv("APP_ENV", "dev"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
