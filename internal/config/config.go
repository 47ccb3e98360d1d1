package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working directory, then in $HOME.
const FileName = ".vibedoc.yaml"

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Config is the persisted tool configuration.
type Config struct {
	LLM            string  `yaml:"llm,omitempty" json:"llm,omitempty"`
	Model          string  `yaml:"model,omitempty" json:"model,omitempty"`
	OptimizerModel string  `yaml:"optimizer_model,omitempty" json:"optimizer_model,omitempty"`
	MaxTokens      int     `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
	Temperature    float64 `yaml:"temperature" json:"temperature"`
	Output         string  `yaml:"output,omitempty" json:"output,omitempty"`
	OutputDir      string  `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	Log            string  `yaml:"log,omitempty" json:"log,omitempty"`

	// APIKey comes from the environment only and is never written back.
	APIKey string `yaml:"-" json:"-"`

	// Path is where the config was read from; empty when defaults are used.
	Path string `yaml:"-" json:"-"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LLM:         "auto",
		MaxTokens:   8192,
		Temperature: 0.7,
		Output:      FormatMarkdown,
		OutputDir:   ".",
		Log:         "quiet",
	}
}

// Validate checks field values.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LLM, validation.Required, validation.In("auto", "claude-cli", "codex-cli", "anthropic-api")),
		validation.Field(&c.MaxTokens, validation.Required, validation.Min(256), validation.Max(200000)),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.Output, validation.Required, validation.In(FormatMarkdown, FormatHTML, FormatJSON)),
		validation.Field(&c.Log, validation.In("quiet", "dev", "development", "prod", "production")),
	)
}

// Find returns the config file path: explicit path, ./.vibedoc.yaml, then
// ~/.vibedoc.yaml. It returns "" when none exists.
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	if home, err := os.UserHomeDir(); err == nil {
		homePath := filepath.Join(home, FileName)
		if _, err := os.Stat(homePath); err == nil {
			return homePath
		}
	}
	return ""
}

// Load reads .env, the config file (if any) and environment overrides, then
// validates the result.
func Load(explicit string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	cfg := Default()

	if path := Find(explicit); path != "" {
		var err error
		if cfg, err = ReadFile(path); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// ReadFile returns the defaults overlaid with the file at path. No
// environment overrides or validation are applied.
func ReadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Path = path
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("VIBEDOC_LLM"); v != "" {
		cfg.LLM = v
	}
	if v := os.Getenv("VIBEDOC_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("VIBEDOC_LOG"); v != "" {
		cfg.Log = v
	}
	if v := os.Getenv("VIBEDOC_MAX_TOKENS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("VIBEDOC_MAX_TOKENS: %w", err)
		}
		cfg.MaxTokens = n
	}
	return nil
}

// Save writes cfg as YAML to path.
func Save(cfg Config, path string) error {
	if path == "" {
		return errors.New("config path is empty")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// HomePath returns ~/.vibedoc.yaml.
func HomePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, FileName), nil
}
