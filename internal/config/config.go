package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/mgpai22/csv2srt/internal/convert"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "csv2srt.yaml"

type Config struct {
	Headers HeadersConfig `yaml:"headers"`
	Input   InputConfig   `yaml:"input"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type HeadersConfig struct {
	Enabled   bool   `yaml:"enabled"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
	Text      string `yaml:"text"`
}

type InputConfig struct {
	Sheet     string `yaml:"sheet"`
	Delimiter string `yaml:"delimiter"`
}

type WatchConfig struct {
	Input         string `yaml:"input"`
	Output        string `yaml:"output"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a validated config with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Mapping returns the configured header names.
func (h HeadersConfig) Mapping() convert.HeaderMapping {
	return convert.HeaderMapping{
		StartTime: h.StartTime,
		EndTime:   h.EndTime,
		Text:      h.Text,
	}
}

// Comma returns the configured delimiter, or zero for the reader default.
func (i InputConfig) Comma() rune {
	if i.Delimiter == `\t` {
		return '\t'
	}
	for _, r := range i.Delimiter {
		return r
	}
	return 0
}

// ValidateDelimiter rejects delimiters the CSV reader cannot split on:
// more than one character, quotes, line breaks and invalid runes.
func (i InputConfig) ValidateDelimiter() error {
	if i.Delimiter == "" || i.Delimiter == `\t` {
		return nil
	}
	if utf8.RuneCountInString(i.Delimiter) != 1 {
		return fmt.Errorf("delimiter %q must be a single character", i.Delimiter)
	}
	switch r := i.Comma(); r {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("delimiter %q cannot be used to separate fields", i.Delimiter)
	}
	return nil
}

func (c *Config) Validate() error {
	mapping := c.Headers.Mapping()
	if !mapping.IsZero() {
		if err := mapping.Validate(); err != nil {
			return errors.New("headers.start_time, headers.end_time and headers.text must all be set")
		}
	}
	if err := c.Input.ValidateDelimiter(); err != nil {
		return fmt.Errorf("input.%w", err)
	}
	if c.Watch.MaxConcurrent < 0 {
		return fmt.Errorf("watch.max_concurrent must not be negative, got %d", c.Watch.MaxConcurrent)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}

	if mapping.IsZero() {
		c.Headers.StartTime = convert.DefaultHeaderMapping.StartTime
		c.Headers.EndTime = convert.DefaultHeaderMapping.EndTime
		c.Headers.Text = convert.DefaultHeaderMapping.Text
	}
	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
