package provider

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "command", cfg.Name)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Timeout: -time.Second}
	assert.Error(t, cfg.Validate())
}

func TestConfig_LoadFromEnv(t *testing.T) {
	t.Setenv("TEXTKIT_PROVIDER", "ollama")
	t.Setenv("TEXTKIT_COMMAND", "ollama")
	t.Setenv("TEXTKIT_COMMAND_ARGS", "run  mistral")
	t.Setenv("TEXTKIT_TIMEOUT", "90s")

	cfg := FromEnv()

	assert.Equal(t, "ollama", cfg.Name)
	assert.Equal(t, "ollama", cfg.Command)
	assert.Equal(t, []string{"run", "mistral"}, cfg.Args)
	assert.Equal(t, 90*time.Second, cfg.Timeout)
}

func TestConfig_LoadFromEnvIgnoresBadTimeout(t *testing.T) {
	t.Setenv("TEXTKIT_TIMEOUT", "soon")

	cfg := FromEnv()

	assert.Equal(t, 2*time.Minute, cfg.Timeout)
}
