package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr          string           `yaml:"listen_addr"`
	FetchTimeoutSeconds int              `yaml:"fetch_timeout_seconds"`
	Summarizer          SummarizerConfig `yaml:"summarizer"`
	Digest              DigestConfig     `yaml:"digest"`
}

type SummarizerConfig struct {
	Type      string `yaml:"type"`
	Model     string `yaml:"model"`
	APIKey    string `yaml:"api_key"`
	MaxTokens int    `yaml:"max_tokens"`
}

// DigestConfig controls the scheduled multi-game digest. An empty schedule
// disables it; the HTTP API runs either way.
type DigestConfig struct {
	Schedule     string          `yaml:"schedule"`
	LookbackDays int             `yaml:"lookback_days"`
	Games        []string        `yaml:"games"`
	Publisher    PublisherConfig `yaml:"publisher"`
}

type PublisherConfig struct {
	Type       string `yaml:"type"`
	WebhookURL string `yaml:"webhook_url"`
}

var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with environment variable values.
func expandEnvVars(s string) string {
	return envVarRegex.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := os.LookupEnv(varName); ok {
			return val
		}
		return match
	})
}

func setDefaults(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.FetchTimeoutSeconds == 0 {
		cfg.FetchTimeoutSeconds = 10
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "anthropic"
	}
	if cfg.Summarizer.Model == "" {
		cfg.Summarizer.Model = "claude-3-haiku-20240307"
	}
	if cfg.Summarizer.MaxTokens == 0 {
		cfg.Summarizer.MaxTokens = 1500
	}
	if cfg.Digest.LookbackDays == 0 {
		cfg.Digest.LookbackDays = 14
	}
	if cfg.Digest.Publisher.Type == "" {
		cfg.Digest.Publisher.Type = "stdout"
	}
}

func validate(cfg *Config) error {
	switch cfg.Summarizer.Type {
	case "anthropic", "basic":
	default:
		return fmt.Errorf("config: unsupported summarizer type %q (supported: anthropic, basic)", cfg.Summarizer.Type)
	}
	// summarizer.api_key is deliberately not required: a missing key selects
	// the deterministic summarizer at runtime instead of failing startup.
	switch cfg.Digest.Publisher.Type {
	case "stdout", "webhook":
	default:
		return fmt.Errorf("config: unsupported publisher type %q (supported: stdout, webhook)", cfg.Digest.Publisher.Type)
	}
	if cfg.Digest.Publisher.Type == "webhook" && cfg.Digest.Publisher.WebhookURL == "" {
		return fmt.Errorf("config: digest.publisher.webhook_url is required for webhook publisher")
	}
	if cfg.FetchTimeoutSeconds < 0 {
		return fmt.Errorf("config: fetch_timeout_seconds must not be negative")
	}
	if cfg.Digest.LookbackDays < 0 {
		return fmt.Errorf("config: digest.lookback_days must not be negative")
	}
	return nil
}

// FetchTimeout returns the bound applied to live source fetches.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSeconds) * time.Second
}

// Load reads the config file, expands environment variables, applies defaults,
// and validates the configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.Summarizer.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	setDefaults(cfg)
	return cfg
}
