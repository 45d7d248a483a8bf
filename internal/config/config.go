package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Координаты офиса по умолчанию, если у арендатора они не заданы
const (
	DefaultOfficeLatitude  = 19.4326
	DefaultOfficeLongitude = -99.1332
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL"`
	HTTPPort       string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"LOG_FORMAT" envDefault:"json"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config
	RedisAddr         string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass         string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize     int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	SLAConfigCacheTTL time.Duration `env:"SLA_CONFIG_CACHE_TTL" envDefault:"1m"`

	// Report Webhook Config
	WebhookURL        string        `env:"REPORT_WEBHOOK_URL"`
	WebhookSecret     string        `env:"REPORT_WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"5"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Analytics Config
	Analytics AnalyticsConfig

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// AnalyticsConfig - значения по умолчанию для параметров аналитики
type AnalyticsConfig struct {
	ClusterRadiusKm        float64 `env:"CLUSTER_RADIUS_KM" envDefault:"0.5"`
	ClusterMinMembers      int     `env:"CLUSTER_MIN_MEMBERS" envDefault:"3"`
	LookbackDays           int     `env:"ANALYTICS_LOOKBACK_DAYS" envDefault:"30"`
	ResolutionLookbackDays int     `env:"RESOLUTION_LOOKBACK_DAYS" envDefault:"90"`
	TrendWeeks             int     `env:"TREND_WEEKS" envDefault:"4"`
	OfficeLatitude         float64 `env:"DEFAULT_OFFICE_LATITUDE"`
	OfficeLongitude        float64 `env:"DEFAULT_OFFICE_LONGITUDE"`
}

// DefaultAnalyticsConfig возвращает значения аналитики без учета окружения
func DefaultAnalyticsConfig() AnalyticsConfig {
	return AnalyticsConfig{
		ClusterRadiusKm:        0.5,
		ClusterMinMembers:      3,
		LookbackDays:           30,
		ResolutionLookbackDays: 90,
		TrendWeeks:             4,
		OfficeLatitude:         DefaultOfficeLatitude,
		OfficeLongitude:        DefaultOfficeLongitude,
	}
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	defaults := DefaultAnalyticsConfig()
	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		SLAConfigCacheTTL: getEnvAsDuration("SLA_CONFIG_CACHE_TTL", time.Minute),
		WebhookURL:        os.Getenv("REPORT_WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("REPORT_WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 5),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		Analytics: AnalyticsConfig{
			ClusterRadiusKm:        getEnvAsFloat("CLUSTER_RADIUS_KM", defaults.ClusterRadiusKm),
			ClusterMinMembers:      getEnvAsInt("CLUSTER_MIN_MEMBERS", defaults.ClusterMinMembers),
			LookbackDays:           getEnvAsInt("ANALYTICS_LOOKBACK_DAYS", defaults.LookbackDays),
			ResolutionLookbackDays: getEnvAsInt("RESOLUTION_LOOKBACK_DAYS", defaults.ResolutionLookbackDays),
			TrendWeeks:             getEnvAsInt("TREND_WEEKS", defaults.TrendWeeks),
			OfficeLatitude:         getEnvAsFloat("DEFAULT_OFFICE_LATITUDE", defaults.OfficeLatitude),
			OfficeLongitude:        getEnvAsFloat("DEFAULT_OFFICE_LONGITUDE", defaults.OfficeLongitude),
		},
		APIKeys:            getEnvAsList("API_KEYS"),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.Analytics.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет, что параметры аналитики имеют смысл
func (a AnalyticsConfig) Validate() error {
	switch {
	case a.ClusterRadiusKm <= 0:
		return fmt.Errorf("CLUSTER_RADIUS_KM must be positive, got %v", a.ClusterRadiusKm)
	case a.ClusterMinMembers < 1:
		return fmt.Errorf("CLUSTER_MIN_MEMBERS must be at least 1, got %d", a.ClusterMinMembers)
	case a.LookbackDays < 1:
		return fmt.Errorf("ANALYTICS_LOOKBACK_DAYS must be at least 1, got %d", a.LookbackDays)
	case a.ResolutionLookbackDays < 1:
		return fmt.Errorf("RESOLUTION_LOOKBACK_DAYS must be at least 1, got %d", a.ResolutionLookbackDays)
	case a.TrendWeeks < 1:
		return fmt.Errorf("TREND_WEEKS must be at least 1, got %d", a.TrendWeeks)
	case a.OfficeLatitude < -90 || a.OfficeLatitude > 90:
		return fmt.Errorf("DEFAULT_OFFICE_LATITUDE out of range: %v", a.OfficeLatitude)
	case a.OfficeLongitude < -180 || a.OfficeLongitude > 180:
		return fmt.Errorf("DEFAULT_OFFICE_LONGITUDE out of range: %v", a.OfficeLongitude)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
