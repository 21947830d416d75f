package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string {
		return m[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(envMap(nil))

	assert.Equal(t, DefaultDatabasePath, cfg.DatabasePath)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.JSONLogs)
	assert.Equal(t, DefaultSpeed, cfg.Speed)
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(envMap(map[string]string{
		"GRADEBOARD_DB":        "/tmp/records.db",
		"GRADEBOARD_LOG_LEVEL": "debug",
		"GRADEBOARD_JSON_LOGS": "true",
		"GRADEBOARD_SPEED":     "75",
	}))

	assert.Equal(t, "/tmp/records.db", cfg.DatabasePath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, 75, cfg.Speed)
}

func TestFromEnvInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown log level", map[string]string{"GRADEBOARD_LOG_LEVEL": "verbose"}},
		{"non-numeric speed", map[string]string{"GRADEBOARD_SPEED": "fast"}},
		{"speed below range", map[string]string{"GRADEBOARD_SPEED": "0"}},
		{"speed above range", map[string]string{"GRADEBOARD_SPEED": "250"}},
		{"json logs off", map[string]string{"GRADEBOARD_JSON_LOGS": "yes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := FromEnv(envMap(tt.env))
			assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
			assert.Equal(t, DefaultSpeed, cfg.Speed)
			assert.False(t, cfg.JSONLogs)
		})
	}
}
