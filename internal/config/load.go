package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default MIME types accepted by the submit endpoint.
const (
	MIMETypePDF  = "application/pdf"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables take
// precedence over file values and use the SUMMARY_ prefix with underscores,
// e.g. SUMMARY_SERVER_PORT or SUMMARY_SUMMARIZER_GEMINI_API_KEY.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SUMMARY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so bind
	// every key explicitly. Without this, env-only values for keys that have
	// no default (the API keys) would never reach Unmarshal.
	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// configKeys lists every configuration key so each one can be bound to its
// SUMMARY_-prefixed environment variable.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"server.allowed_origins",
	"storage.upload_dir",
	"storage.output_dir",
	"storage.allowed_types",
	"summarizer.provider",
	"summarizer.model_name",
	"summarizer.gemini_api_key",
	"summarizer.openai_api_key",
	"summarizer.max_length",
	"summarizer.min_length",
	"summarizer.truncate_chars",
	"summarizer.max_retries",
	"summarizer.retry_delay_seconds",
	"task.worker_count",
	"task.queue_size",
}

// setDefaults registers the baseline configuration. The summarization
// defaults (10000-char truncation budget, 150/50 length bounds) match the
// documented behavior of the pipeline.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("storage.upload_dir", "./temp_uploads")
	v.SetDefault("storage.output_dir", "./generated_ppts")
	v.SetDefault("storage.allowed_types", []string{MIMETypePDF, MIMETypeDOCX})

	v.SetDefault("summarizer.provider", "gemini")
	v.SetDefault("summarizer.model_name", "gemini-2.0-flash")
	v.SetDefault("summarizer.max_length", 150)
	v.SetDefault("summarizer.min_length", 50)
	v.SetDefault("summarizer.truncate_chars", 10000)
	v.SetDefault("summarizer.max_retries", 3)
	v.SetDefault("summarizer.retry_delay_seconds", 2)

	v.SetDefault("task.worker_count", 2)
	v.SetDefault("task.queue_size", 100)
}
