package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
// ⭐ SSOT: every environment variable is read here and nowhere else
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Flat files
	Data DataConfig

	// Remote stats API
	NBAStats NBAStatsConfig

	// Redis (optional season cache)
	Redis RedisConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// DataConfig describes where the flat files live
type DataConfig struct {
	Dir           string
	StatsFile     string
	ChampionsFile string
	ReferenceFile string        // empty = embedded reference data
	FetchDelay    time.Duration // pause between season calls during a build
}

// StatsPath returns the full path of the team stats file
func (d DataConfig) StatsPath() string {
	return filepath.Join(d.Dir, d.StatsFile)
}

// ChampionsPath returns the full path of the champions file
func (d DataConfig) ChampionsPath() string {
	return filepath.Join(d.Dir, d.ChampionsFile)
}

// NBAStatsConfig holds stats.nba.com client configuration
type NBAStatsConfig struct {
	BaseURL string
	Timeout time.Duration
	MaxRPS  float64
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	Enabled  bool
}

// Load reads configuration from environment variables
// ⭐ SSOT: the only function calling os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8501"),
		Env:  getEnv("ENV", "development"),

		Data: DataConfig{
			Dir:           getEnv("DATA_DIR", "data"),
			StatsFile:     getEnv("STATS_FILE", "processed_team_stats_2015_2025.csv"),
			ChampionsFile: getEnv("CHAMPIONS_FILE", "champions.csv"),
			ReferenceFile: getEnv("REFERENCE_FILE", ""),
			FetchDelay:    getEnvAsDuration("FETCH_DELAY", "1.5s"),
		},

		NBAStats: NBAStatsConfig{
			BaseURL: getEnv("NBA_STATS_BASE_URL", "https://stats.nba.com"),
			Timeout: getEnvAsDuration("NBA_STATS_TIMEOUT", "30s"),
			MaxRPS:  getEnvAsFloat("NBA_STATS_MAX_RPS", 1),
		},

		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Data.StatsFile == "" || c.Data.ChampionsFile == "" {
		return fmt.Errorf("STATS_FILE and CHAMPIONS_FILE must not be empty")
	}

	if c.Data.FetchDelay < 0 {
		return fmt.Errorf("FETCH_DELAY must not be negative")
	}

	if c.NBAStats.Timeout <= 0 {
		return fmt.Errorf("NBA_STATS_TIMEOUT must be positive")
	}

	if c.NBAStats.MaxRPS <= 0 {
		return fmt.Errorf("NBA_STATS_MAX_RPS must be positive")
	}

	return nil
}

// LoadWithEnvFile loads path into the environment first, then calls Load.
// Variables already set in the environment win over the file.
func LoadWithEnvFile(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", path, err)
		}
	}
	return Load()
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
