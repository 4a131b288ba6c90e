package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig stores HTTP server specific configurations. Timeouts are
// expressed in whole seconds.
type ServerConfig struct {
	Addr                   string `yaml:"addr"`
	ReadTimeoutSeconds     int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds    int    `yaml:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int    `yaml:"shutdown_timeout_seconds"`
}

// ReadTimeout returns the configured read timeout.
func (s ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the configured write timeout.
func (s ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// ShutdownTimeout returns the configured graceful shutdown timeout.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// OpenAIConfig stores OpenAI specific configurations.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// AudioConfig stores the PCM layout the synthesis provider emits.
type AudioConfig struct {
	SampleRate    int `yaml:"sample_rate"`
	NumChannels   int `yaml:"num_channels"`
	BitsPerSample int `yaml:"bits_per_sample"`
}

// HistoryConfig stores synthesis history specific configurations.
type HistoryConfig struct {
	CacheSize int `yaml:"cache_size"`
}

// Config stores the application configuration.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	OpenAI   OpenAIConfig  `yaml:"openai"`
	Audio    AudioConfig   `yaml:"audio"`
	History  HistoryConfig `yaml:"history"`
	LogLevel string        `yaml:"log_level"`
}

// LoadConfig loads the configuration from the given file path and fills
// in defaults for omitted fields.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filePath, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadTimeoutSeconds <= 0 {
		cfg.Server.ReadTimeoutSeconds = 15
	}
	if cfg.Server.WriteTimeoutSeconds <= 0 {
		cfg.Server.WriteTimeoutSeconds = 60
	}
	if cfg.Server.ShutdownTimeoutSeconds <= 0 {
		cfg.Server.ShutdownTimeoutSeconds = 10
	}
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = 24000
	}
	if cfg.Audio.NumChannels <= 0 {
		cfg.Audio.NumChannels = 1
	}
	if cfg.Audio.BitsPerSample <= 0 {
		cfg.Audio.BitsPerSample = 16
	}
	if cfg.History.CacheSize <= 0 {
		cfg.History.CacheSize = 50
	}
}
