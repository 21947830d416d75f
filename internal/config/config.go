package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultDatabasePath = "students.db"
	DefaultLogLevel     = "info"
	DefaultSpeed        = 40
)

// Config carries the runtime settings of the application. Every value
// has a usable default; invalid environment input never aborts startup.
type Config struct {
	DatabasePath string
	LogLevel     string
	JSONLogs     bool
	Speed        int
}

// Load reads settings from the environment, after loading an optional
// .env file from the working directory.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function.
func FromEnv(getenv func(string) string) Config {
	cfg := Config{
		DatabasePath: DefaultDatabasePath,
		LogLevel:     DefaultLogLevel,
		Speed:        DefaultSpeed,
	}

	if path := getenv("GRADEBOARD_DB"); path != "" {
		cfg.DatabasePath = path
	}

	switch level := getenv("GRADEBOARD_LOG_LEVEL"); level {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = level
	}

	if getenv("GRADEBOARD_JSON_LOGS") == "true" {
		cfg.JSONLogs = true
	}

	if raw := getenv("GRADEBOARD_SPEED"); raw != "" {
		if speed, err := strconv.Atoi(raw); err == nil && speed >= 1 && speed <= 100 {
			cfg.Speed = speed
		}
	}

	return cfg
}
