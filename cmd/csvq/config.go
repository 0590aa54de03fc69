package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
)

// Config represents the csvq configuration file
type Config struct {
	// Delimiter is the fallback delimiter for input without a Sep= line,
	// and the default output delimiter of convert.
	Delimiter string `yaml:"delimiter"`
	// CRLF makes convert write \r\n line terminators.
	CRLF bool `yaml:"crlf"`
	// Header makes html render the first row as header cells.
	Header bool `yaml:"header"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: ",",
	}
}

// LoadConfig loads the configuration file at path.
// A missing file yields the default configuration.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Delimiter == "" {
		config.Delimiter = ","
	}
	if _, err := parseDelimiter(config.Delimiter); err != nil {
		return nil, fmt.Errorf("config delimiter %q: %w", config.Delimiter, err)
	}
	return config, nil
}

// parseDelimiter converts a flag or config value to a delimiter rune.
// `\t` and "tab" name the tab character.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, ErrInvalidDelimiter
	}
	return r, nil
}
