package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"     validate:"required"`
	Storage    StorageConfig    `mapstructure:"storage"    validate:"required"`
	Summarizer SummarizerConfig `mapstructure:"summarizer" validate:"required"`
	Task       TaskConfig       `mapstructure:"task"       validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// AllowedOrigins lists the origins granted CORS access, typically the
	// local frontend during development.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StorageConfig contains the upload and artifact directory settings.
type StorageConfig struct {
	// UploadDir holds transient uploaded documents until the pipeline has
	// read them.
	UploadDir string `mapstructure:"upload_dir" validate:"required"`

	// OutputDir holds generated slide decks. Artifacts are retained for
	// the lifetime of the process; no eviction is performed.
	OutputDir string `mapstructure:"output_dir" validate:"required"`

	// AllowedTypes is the set of accepted upload MIME types.
	AllowedTypes []string `mapstructure:"allowed_types" validate:"required,min=1"`
}

// SummarizerConfig contains all language-model integration settings.
type SummarizerConfig struct {
	// Provider selects the summarization backend.
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai"`

	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required_if=Provider gemini"`
	OpenAIAPIKey string `mapstructure:"openai_api_key" validate:"required_if=Provider openai"`

	// ModelName is the provider-specific model identifier.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// MaxLength and MinLength bound the generated summary, in words.
	MaxLength int `mapstructure:"max_length" validate:"required,gt=0"`
	MinLength int `mapstructure:"min_length" validate:"required,gt=0,ltefield=MaxLength"`

	// TruncateChars caps how much extracted text is sent to the model.
	// Longer documents are cut off at this budget, not chunked; that is a
	// known quality limitation of this design.
	TruncateChars int `mapstructure:"truncate_chars" validate:"required,gt=0"`

	// MaxRetries and RetryDelaySeconds control the retry loop around
	// transient model-call failures.
	MaxRetries        int `mapstructure:"max_retries"         validate:"gte=0"`
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`
}

// TaskConfig contains background task processing settings.
type TaskConfig struct {
	// WorkerCount determines how many pipelines may run concurrently.
	WorkerCount int `mapstructure:"worker_count" validate:"required,gt=0"`

	// QueueSize determines the buffer size for the in-memory task queue.
	QueueSize int `mapstructure:"queue_size" validate:"required,gt=0"`
}
