package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver     string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
	SQLitePath string
}

type Config struct {
	ServerPort          int
	DB                  DB
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	BcryptCost          int
	LogLevel            slog.Level
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}

func parseLogLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func LoadDB() DB {
	return DB{
		Driver:     getEnv("DB_DRIVER", DriverPostgres),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "just_tech_news"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "just_tech_news.db"),
	}
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		slog.Warn(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort:          getEnvAsInt("SERVER_PORT", 3001),
		DB:                  LoadDB(),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		BcryptCost:          getEnvAsInt("BCRYPT_COST", 10),
		LogLevel:            parseLogLevel(getEnv("LOG_LEVEL", "info")),
	}
}

// DSN builds the data source name for the configured driver.
func (d DB) DSN() string {
	switch d.Driver {
	case DriverSQLite:
		return SQLiteDSN(d.SQLitePath)
	case DriverPGX:
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			d.DbUSER, d.DbPASSWORD, d.DbHOST, d.DbPORT, d.DbNAME, d.DbSSLMODE)
	default:
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.DbHOST, d.DbPORT, d.DbUSER, d.DbPASSWORD, d.DbNAME, d.DbSSLMODE,
		)
	}
}

// SQLiteDSN turns a file path into a modernc sqlite DSN with foreign keys
// enforced on every connection.
func SQLiteDSN(path string) string {
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite", path)
}
