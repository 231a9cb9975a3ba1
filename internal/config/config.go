package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderORS    = "ors"
	ProviderGoogle = "google"
)

type Config struct {
	Port        string
	DatabaseURL string
	DBMaxConns  int

	RouteProvider    string
	ORSAPIKey        string
	GoogleMapsAPIKey string

	// GeocodeConcurrency caps parallel geocode lookups per route.
	GeocodeConcurrency int

	RedisAddr     string
	RouteCacheTTL time.Duration

	RabbitMQURL string

	AverageSpeedMPH float64
}

// Load reads .env when present, then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := Config{
		Port:               Get("PORT", "8080"),
		DatabaseURL:        Get("DATABASE_URL", ""),
		DBMaxConns:         GetInt("DB_MAX_CONNS", 10),
		RouteProvider:      strings.ToLower(Get("ROUTE_PROVIDER", ProviderORS)),
		ORSAPIKey:          Get("ORS_API_KEY", ""),
		GoogleMapsAPIKey:   Get("GOOGLE_MAPS_API_KEY", ""),
		GeocodeConcurrency: GetInt("GEOCODE_CONCURRENCY", 3),
		RedisAddr:          Get("REDIS_ADDR", ""),
		RouteCacheTTL:      GetDuration("ROUTE_CACHE_TTL", 24*time.Hour),
		RabbitMQURL:        Get("RABBITMQ_URL", ""),
		AverageSpeedMPH:    GetFloat("AVERAGE_SPEED_MPH", 55),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.RouteProvider {
	case ProviderORS:
		if c.ORSAPIKey == "" {
			return fmt.Errorf("ORS_API_KEY is required when ROUTE_PROVIDER=%s", ProviderORS)
		}
	case ProviderGoogle:
		if c.GoogleMapsAPIKey == "" {
			return fmt.Errorf("GOOGLE_MAPS_API_KEY is required when ROUTE_PROVIDER=%s", ProviderGoogle)
		}
	default:
		return fmt.Errorf("unknown ROUTE_PROVIDER %q", c.RouteProvider)
	}

	if c.GeocodeConcurrency < 1 {
		return fmt.Errorf("GEOCODE_CONCURRENCY must be at least 1, got %d", c.GeocodeConcurrency)
	}
	if c.AverageSpeedMPH <= 0 {
		return fmt.Errorf("AVERAGE_SPEED_MPH must be positive, got %v", c.AverageSpeedMPH)
	}
	return nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) int {
	if v := Get(key, ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("config: ignoring invalid int key=%s value=%q", key, v)
	}
	return fallback
}

func GetFloat(key string, fallback float64) float64 {
	if v := Get(key, ""); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
		log.Printf("config: ignoring invalid float key=%s value=%q", key, v)
	}
	return fallback
}

func GetDuration(key string, fallback time.Duration) time.Duration {
	if v := Get(key, ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: ignoring invalid duration key=%s value=%q", key, v)
	}
	return fallback
}
