package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeyEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"GPT_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "MEDIAQUIZ_LLM_OPENAI_API_KEY", "MEDIAQUIZ_LLM_GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearKeyEnv(t)

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 8192, cfg.Staging.ChunkSize)
	assert.Equal(t, "OpenAIGPT", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Gemini.Model)
	assert.Equal(t, "whisper-1", cfg.Transcription.Model)
	assert.Equal(t, "multiple_choice", cfg.Quiz.DefaultType)
	assert.Equal(t, 1, cfg.Quiz.DefaultNumQuizzes)
	assert.Equal(t, 4, cfg.Quiz.DefaultNumChoices)
	assert.Equal(t, 120*time.Second, cfg.LLM.OpenAI.Timeout)
	assert.False(t, cfg.Redis.CacheEnabled())
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("MEDIAQUIZ_SERVER_PORT", "9999")
	t.Setenv("MEDIAQUIZ_REDIS_ADDRESS", "localhost:6379")

	v := viper.New()
	v.SetConfigType("yaml")
	yaml := []byte(`
server:
  port: 8080
llm:
  default_provider: GoogleBard
  gemini:
    api_key: gemini-key
quiz:
  strict_answers: true
`)
	require.NoError(t, v.ReadConfig(bytes.NewReader(yaml)))

	cfg, err := load(v)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "GoogleBard", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gemini-key", cfg.DefaultProviderKey())
	assert.True(t, cfg.Quiz.StrictAnswers)
	assert.True(t, cfg.Redis.CacheEnabled())
}

func TestLoad_LegacyKeyVariable(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("GPT_KEY", "sk-legacy")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "sk-legacy", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "sk-legacy", cfg.ProviderKey("OpenAIGPT"))
	// Transcription falls back to the OpenAI key when none is set.
	assert.Equal(t, "sk-legacy", cfg.Transcription.APIKey)
	assert.Empty(t, cfg.ProviderKey("Unknown"))
}

func TestLoad_InvalidProvider(t *testing.T) {
	clearKeyEnv(t)
	t.Setenv("MEDIAQUIZ_LLM_DEFAULT_PROVIDER", "ChatBot")

	_, err := load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.default_provider")
}
