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
	Env        string
	ServerPort string
	JWTSecret  string

	BackendURL     string
	BackendTimeout time.Duration
	BackendRPS     float64

	SalonTimezone string
	CORSOrigins   []string
	WorkspaceTTL  time.Duration

	RedisURL    string
	DatabaseURL string

	GalleryBucket string
	AWSRegion     string
	AWSAccessKey  string
	AWSSecretKey  string
	S3Endpoint    string
	PresignTTL    time.Duration
}

// Load reads the environment, after merging an optional .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", ""),

		BackendURL:     strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:5000"), "/"),
		BackendTimeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		BackendRPS:     getFloat("BACKEND_RPS", 20),

		SalonTimezone: getEnv("SALON_TIMEZONE", "America/New_York"),
		CORSOrigins:   splitList(getEnv("CORS_ORIGINS", "")),
		WorkspaceTTL:  getDuration("WORKSPACE_TTL", 2*time.Hour),

		RedisURL:    getEnv("REDIS_URL", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		GalleryBucket: getEnv("GALLERY_BUCKET", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey:  getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		PresignTTL:    getDuration("PRESIGN_TTL", 15*time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
