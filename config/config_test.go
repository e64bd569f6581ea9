package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/voicepos")
	t.Setenv("UPLIFT_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "uplift", cfg.TranscribeProvider)
	assert.Equal(t, "https://api.upliftai.org", cfg.UpliftBaseURL)
	assert.Equal(t, "voicepos", cfg.MetricsNamespace)
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("UPLIFT_API_KEY", "sk-test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoadGeminiProviderRequiresKey(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/voicepos")
	t.Setenv("TRANSCRIBE_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestLoadRejectsUnknownProvider(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/voicepos")
	t.Setenv("TRANSCRIBE_PROVIDER", "whisper")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TRANSCRIBE_PROVIDER")
}
