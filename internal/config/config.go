package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds the whole application configuration,
// populated from environment variables.
type Config struct {
	App       AppConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Collector CollectorConfig
	Cache     CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  int // minutes
	RefreshTokenExpiry int // hours
}

// CollectorConfig configures the upstream scraping API used by the
// collection worker. DefaultAccounts seeds collection when nothing
// has been registered yet.
type CollectorConfig struct {
	BaseURL         string
	APIToken        string
	TimeoutSeconds  int
	DefaultAccounts []string
	CollectCron     string
}

type CacheConfig struct {
	DashboardTTLSeconds int
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Social Analytics API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenExpiry:  getEnvInt("JWT_ACCESS_EXPIRY", 15),
			RefreshTokenExpiry: getEnvInt("JWT_REFRESH_EXPIRY", 72),
		},
		Collector: CollectorConfig{
			BaseURL:         getEnv("COLLECTOR_BASE_URL", "https://api.apify.com/v2"),
			APIToken:        getEnv("COLLECTOR_API_TOKEN", ""),
			TimeoutSeconds:  getEnvInt("COLLECTOR_TIMEOUT_SECONDS", 120),
			DefaultAccounts: getEnvList("COLLECTOR_DEFAULT_ACCOUNTS", "cristiano,therock,selenagomez"),
			CollectCron:     getEnv("COLLECTOR_CRON", "0 */6 * * *"),
		},
		Cache: CacheConfig{
			DashboardTTLSeconds: getEnvInt("CACHE_DASHBOARD_TTL_SECONDS", 300),
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvList(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
