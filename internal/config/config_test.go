package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "8642", cfg.HTTPPort)
	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, "", cfg.LessonsPath)
}

func TestNewEnvironmentOverrides(t *testing.T) {
	t.Setenv("LEARNPY_DB", "/tmp/learnpy-test.db")
	t.Setenv("LEARNPY_LESSONS", "/tmp/lessons.json")
	t.Setenv("LEARNPY_HTTP_PORT", "9000")
	t.Setenv("LEARNPY_PLAYGROUND_URL", "https://play.example.com")
	t.Setenv("LEARNPY_LOG_LEVEL", "-4")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/learnpy-test.db", cfg.DBPath)
	assert.Equal(t, "/tmp/lessons.json", cfg.LessonsPath)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "https://play.example.com", cfg.PlaygroundURL)
	assert.Equal(t, -4, cfg.LogLevel)
}
