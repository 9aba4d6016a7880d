package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server        ServerConfig
	Logger        LoggerConfig
	Staging       StagingConfig
	Transcription TranscriptionConfig
	LLM           LLMConfig
	Quiz          QuizConfig
	Redis         RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	BodyLimit    int
	AllowOrigins string
}

type LoggerConfig struct {
	Env   string
	Level string
}

type StagingConfig struct {
	Dir             string
	ChunkSize       int
	DownloadTimeout time.Duration
}

type TranscriptionConfig struct {
	BaseURL  string
	APIKey   string
	Model    string
	Language string
	Timeout  time.Duration
}

type LLMConfig struct {
	DefaultProvider string
	OpenAI          OpenAIConfig
	Gemini          GeminiConfig
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type QuizConfig struct {
	DefaultType       string
	DefaultNumQuizzes int
	DefaultNumChoices int
	StrictAnswers     bool
}

type RedisConfig struct {
	Address       string
	Password      string
	DB            int
	TranscriptTTL time.Duration
}

// CacheEnabled reports whether a Redis address was configured.
func (r RedisConfig) CacheEnabled() bool {
	return r.Address != ""
}

const envPrefix = "MEDIAQUIZ"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 60)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.idle_timeout", 60)
	v.SetDefault("server.body_limit", 100*1024*1024)
	v.SetDefault("server.allow_origins", "*")

	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	v.SetDefault("staging.dir", filepath.Join(os.TempDir(), "media-quiz"))
	v.SetDefault("staging.chunk_size", 8192)
	v.SetDefault("staging.download_timeout", 300)

	v.SetDefault("transcription.base_url", "https://api.openai.com/v1")
	v.SetDefault("transcription.model", "whisper-1")
	v.SetDefault("transcription.timeout", 600)

	v.SetDefault("llm.default_provider", "OpenAIGPT")
	v.SetDefault("llm.openai.model", "gpt-4o-mini-2024-07-18")
	v.SetDefault("llm.openai.timeout", 120)
	v.SetDefault("llm.gemini.model", "gemini-2.0-flash")
	v.SetDefault("llm.gemini.timeout", 120)

	v.SetDefault("quiz.default_type", "multiple_choice")
	v.SetDefault("quiz.default_num_quizzes", 1)
	v.SetDefault("quiz.default_num_choices", 4)
	v.SetDefault("quiz.strict_answers", false)

	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.transcript_ttl", 86400)
}

// LoadConfig reads config.yaml from the working directory or ./config and applies
// MEDIAQUIZ_* environment overrides. A missing file is not an error.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return load(v)
}

// load builds a Config from an already prepared viper instance.
func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: v.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  v.GetDuration("server.idle_timeout") * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
			AllowOrigins: v.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
		Staging: StagingConfig{
			Dir:             v.GetString("staging.dir"),
			ChunkSize:       v.GetInt("staging.chunk_size"),
			DownloadTimeout: v.GetDuration("staging.download_timeout") * time.Second,
		},
		Transcription: TranscriptionConfig{
			BaseURL:  v.GetString("transcription.base_url"),
			APIKey:   v.GetString("transcription.api_key"),
			Model:    v.GetString("transcription.model"),
			Language: v.GetString("transcription.language"),
			Timeout:  v.GetDuration("transcription.timeout") * time.Second,
		},
		LLM: LLMConfig{
			DefaultProvider: v.GetString("llm.default_provider"),
			OpenAI: OpenAIConfig{
				APIKey:  v.GetString("llm.openai.api_key"),
				Model:   v.GetString("llm.openai.model"),
				BaseURL: v.GetString("llm.openai.base_url"),
				Timeout: v.GetDuration("llm.openai.timeout") * time.Second,
			},
			Gemini: GeminiConfig{
				APIKey:  v.GetString("llm.gemini.api_key"),
				Model:   v.GetString("llm.gemini.model"),
				BaseURL: v.GetString("llm.gemini.base_url"),
				Timeout: v.GetDuration("llm.gemini.timeout") * time.Second,
			},
		},
		Quiz: QuizConfig{
			DefaultType:       v.GetString("quiz.default_type"),
			DefaultNumQuizzes: v.GetInt("quiz.default_num_quizzes"),
			DefaultNumChoices: v.GetInt("quiz.default_num_choices"),
			StrictAnswers:     v.GetBool("quiz.strict_answers"),
		},
		Redis: RedisConfig{
			Address:       v.GetString("redis.address"),
			Password:      v.GetString("redis.password"),
			DB:            v.GetInt("redis.db"),
			TranscriptTTL: v.GetDuration("redis.transcript_ttl") * time.Second,
		},
	}

	// The original service read its key from GPT_KEY; keep honouring it.
	if cfg.LLM.OpenAI.APIKey == "" {
		cfg.LLM.OpenAI.APIKey = os.Getenv("GPT_KEY")
	}
	if cfg.LLM.OpenAI.APIKey == "" {
		cfg.LLM.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.Transcription.APIKey == "" {
		cfg.Transcription.APIKey = cfg.LLM.OpenAI.APIKey
	}
	if cfg.LLM.Gemini.APIKey == "" {
		cfg.LLM.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.LLM.DefaultProvider {
	case "OpenAIGPT", "GoogleBard":
	default:
		return fmt.Errorf("invalid llm.default_provider %q: must be OpenAIGPT or GoogleBard", c.LLM.DefaultProvider)
	}
	if c.Staging.ChunkSize <= 0 {
		return fmt.Errorf("invalid staging.chunk_size %d: must be positive", c.Staging.ChunkSize)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	return nil
}

// DefaultProviderKey returns the configured credential for the default provider.
func (c *Config) DefaultProviderKey() string {
	return c.ProviderKey(c.LLM.DefaultProvider)
}

// ProviderKey returns the configured credential for provider, or "" if unknown.
func (c *Config) ProviderKey(provider string) string {
	switch provider {
	case "OpenAIGPT":
		return c.LLM.OpenAI.APIKey
	case "GoogleBard":
		return c.LLM.Gemini.APIKey
	default:
		return ""
	}
}
