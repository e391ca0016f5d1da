package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL            string
	JWTSecret              string
	Port                   string
	Timezone               string
	AccessTokenExpireMins  int
	RefreshTokenExpireDays int
	CORSOrigins            string
	TeamCodeCreateAttempts int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	godotenv.Load()

	return &Config{
		DatabaseURL:            getEnv("DATABASE_URL", "checkin.db"),
		JWTSecret:              getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		Port:                   getEnv("PORT", "8080"),
		Timezone:               getEnv("TIMEZONE", "UTC"),
		AccessTokenExpireMins:  getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		RefreshTokenExpireDays: getEnvInt("REFRESH_TOKEN_EXPIRE_DAYS", 7),
		CORSOrigins:            getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		TeamCodeCreateAttempts: getEnvInt("TEAM_CODE_CREATE_ATTEMPTS", 5),
	}
}

// Location resolves the configured reference timezone used for all
// day-boundary computations.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) CORSOriginList() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
