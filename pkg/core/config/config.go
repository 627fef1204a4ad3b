// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	plerror "github.com/msto63/plzero/foundation/core/error"
	mdwlog "github.com/msto63/plzero/foundation/core/log"
	"github.com/msto63/plzero/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path
const EnvConfigPath = "PLZERO_CONFIG"

// Output formats understood by the report writers
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputPlain = "plain"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Lexer   LexerConfig   `toml:"lexer" yaml:"lexer"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// LexerConfig holds the scanner limits
type LexerConfig struct {
	MaxIdentLength int   `toml:"max_ident_length" yaml:"max_ident_length"`
	MaxNumber      int64 `toml:"max_number" yaml:"max_number"`
}

// OutputConfig holds token listing settings
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Lexer: LexerConfig{
			MaxIdentLength: lexer.DefaultMaxIdentLength,
			MaxNumber:      lexer.DefaultMaxNumber,
		},
		Output: OutputConfig{
			Format: OutputTable,
			Color:  true,
		},
	}
}

// Load loads configuration from a TOML or YAML file. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, plerror.Wrap(err, "config file not found").
				WithCode(plerror.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, plerror.Wrap(err, "failed to read config").
			WithCode(plerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg := Default()
	if err := decode(path, data, cfg); err != nil {
		return nil, plerror.Wrap(err, "failed to parse config").
			WithCode(plerror.CodeConfigError).
			WithDetail("path", path)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from PLZERO_CONFIG or the first default
// location that exists. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./plzero.toml",
		"./configs/plzero.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "plzero", "config.toml"))
	}
	return paths
}

// decode picks the parser from the file extension; unknown extensions
// are read as TOML.
func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return plerror.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(plerror.CodeInvalidConfig)
		}
		return nil
	}
}

func (c *Config) normalize() {
	c.General.LogLevel = strings.ToLower(strings.TrimSpace(c.General.LogLevel))
	c.General.LogFormat = strings.ToLower(strings.TrimSpace(c.General.LogFormat))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))

	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Output.Format == "" {
		c.Output.Format = OutputTable
	}
}

// Validate checks value ranges and enumerations
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Lexer.MaxIdentLength <= 0 {
		return invalid("lexer.max_ident_length", c.Lexer.MaxIdentLength)
	}
	if c.Lexer.MaxNumber <= 0 {
		return invalid("lexer.max_number", c.Lexer.MaxNumber)
	}

	switch c.Output.Format {
	case OutputTable, OutputJSON, OutputYAML, OutputPlain:
	default:
		return invalid("output.format", c.Output.Format)
	}

	return nil
}

func invalid(key string, value interface{}) error {
	return plerror.Newf("invalid value for %s: %v", key, value).
		WithCode(plerror.CodeInvalidConfig).
		WithDetail("key", key)
}

// LexerConfig converts the lexer section for lexer.NewWithConfig
func (c *Config) LexerConfig(logger *mdwlog.Logger) lexer.Config {
	return lexer.Config{
		MaxIdentLength: c.Lexer.MaxIdentLength,
		MaxNumber:      c.Lexer.MaxNumber,
		Logger:         logger,
	}
}
