package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SUMMARY_SUMMARIZER_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "./temp_uploads", cfg.Storage.UploadDir)
	assert.Equal(t, "./generated_ppts", cfg.Storage.OutputDir)
	assert.ElementsMatch(t,
		[]string{MIMETypePDF, MIMETypeDOCX},
		cfg.Storage.AllowedTypes)

	assert.Equal(t, "gemini", cfg.Summarizer.Provider)
	assert.Equal(t, "test-key", cfg.Summarizer.GeminiAPIKey)
	assert.Equal(t, 150, cfg.Summarizer.MaxLength)
	assert.Equal(t, 50, cfg.Summarizer.MinLength)
	assert.Equal(t, 10000, cfg.Summarizer.TruncateChars)

	assert.Equal(t, 2, cfg.Task.WorkerCount)
	assert.Equal(t, 100, cfg.Task.QueueSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SUMMARY_SUMMARIZER_GEMINI_API_KEY", "test-key")
	t.Setenv("SUMMARY_SERVER_PORT", "9090")
	t.Setenv("SUMMARY_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SUMMARY_TASK_WORKER_COUNT", "4")
	t.Setenv("SUMMARY_SUMMARIZER_TRUNCATE_CHARS", "5000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 4, cfg.Task.WorkerCount)
	assert.Equal(t, 5000, cfg.Summarizer.TruncateChars)
}

// Env-only deployments set the API keys without any config file or default,
// so the keys must still survive into the config struct.
func TestLoad_EnvOnlyAPIKeys(t *testing.T) {
	t.Run("gemini", func(t *testing.T) {
		t.Setenv("SUMMARY_SUMMARIZER_GEMINI_API_KEY", "env-only-gemini")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "env-only-gemini", cfg.Summarizer.GeminiAPIKey)
	})

	t.Run("openai", func(t *testing.T) {
		t.Setenv("SUMMARY_SUMMARIZER_PROVIDER", "openai")
		t.Setenv("SUMMARY_SUMMARIZER_OPENAI_API_KEY", "env-only-openai")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Summarizer.Provider)
		assert.Equal(t, "env-only-openai", cfg.Summarizer.OpenAIAPIKey)
	})
}

func TestLoad_ValidationFailures(t *testing.T) {
	t.Run("missing provider API key", func(t *testing.T) {
		t.Setenv("SUMMARY_SUMMARIZER_PROVIDER", "openai")
		// no SUMMARY_SUMMARIZER_OPENAI_API_KEY

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("SUMMARY_SUMMARIZER_GEMINI_API_KEY", "test-key")
		t.Setenv("SUMMARY_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		t.Setenv("SUMMARY_SUMMARIZER_PROVIDER", "llama")

		_, err := Load()
		require.Error(t, err)
	})
}
