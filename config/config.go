package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the assistant.
type Config struct {
	LLM       LLMConfig       `yaml:"llm"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Router    RouterConfig    `yaml:"router"`
	FAQ       FAQConfig       `yaml:"faq"`
	Database  DatabaseConfig  `yaml:"database"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LLMConfig holds chat-completion configuration.
type LLMConfig struct {
	Provider    string  `yaml:"provider"`    // "groq", "openai", "local"
	Model       string  `yaml:"model"`       // e.g., "llama-3.3-70b-versatile"
	APIKeyEnv   string  `yaml:"api_key_env"` // Environment variable for API key
	BaseURL     string  `yaml:"base_url"`    // Override for custom endpoints
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "ollama", "openai", "jina"
	Model     string `yaml:"model"`       // e.g., "all-minilm"
	APIKeyEnv string `yaml:"api_key_env"` // Environment variable for API key
	BaseURL   string `yaml:"base_url"`
	Dimension int    `yaml:"dimension"`
}

// RouterConfig holds intent-routing configuration.
type RouterConfig struct {
	Threshold float64 `yaml:"threshold"` // Minimum similarity to accept a route
}

// FAQConfig holds FAQ retrieval configuration.
type FAQConfig struct {
	VectorsDir string `yaml:"vectors_dir"`
	Collection string `yaml:"collection"`
	CSVPath    string `yaml:"csv_path"`
	TopK       int    `yaml:"top_k"`
}

// DatabaseConfig holds the product catalog location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:    "groq",
			Model:       "llama-3.3-70b-versatile",
			APIKeyEnv:   "GROQ_API_KEY",
			Temperature: 0.2,
			MaxTokens:   1024,
		},
		Embedding: EmbeddingConfig{
			Provider:  "ollama",
			Model:     "all-minilm",
			Dimension: 384,
		},
		Router: RouterConfig{
			Threshold: 0.5,
		},
		FAQ: FAQConfig{
			VectorsDir: ".shopbot/vectors",
			Collection: "faqs",
			CSVPath:    "resources/faq_data.csv",
			TopK:       2,
		},
		Database: DatabaseConfig{
			Path: "db.sqlite",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for shopbot.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "shopbot.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".shopbot", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}
