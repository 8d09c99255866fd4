package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	Server    ServerConfig
	CORS      CORSConfig
	Dashboard DashboardConfig
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// DashboardConfig tunes the dashboard behavior: which dial rendering variant
// the detail view advertises, how often the display sweeper runs, and how
// long a stale estimated end time survives before it is cleared.
type DashboardConfig struct {
	DialTheme        string
	SweepInterval    time.Duration
	EndTimeRetention time.Duration
}

// dialThemes are the rendering variants the frontend ships for the workflow
// dial. The backend only selects one; it carries no per-variant logic.
var dialThemes = map[string]bool{
	"orbit":    true,
	"pulse":    true,
	"aurora":   true,
	"minimal":  true,
	"spectrum": true,
	"eclipse":  true,
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "or_control"),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("JWT_ACCESS_SECRET", "your-access-secret-key"),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", "your-refresh-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m"), 15*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 168*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Dashboard: DashboardConfig{
			DialTheme:        parseDialTheme(getEnv("DIAL_THEME", "orbit")),
			SweepInterval:    parseDuration(getEnv("SWEEP_INTERVAL", "10s"), 10*time.Second),
			EndTimeRetention: parseDuration(getEnv("END_TIME_RETENTION", "2h"), 2*time.Hour),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseDialTheme(s string) string {
	if dialThemes[s] {
		return s
	}
	fmt.Printf("Warning: Unknown dial theme '%s', using 'orbit'\n", s)
	return "orbit"
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
