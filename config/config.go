package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alorle/iptv-curator/internal/curation"
	"github.com/alorle/iptv-curator/internal/lineup"
)

// DefaultSourceURL is the iptv-org playlist for Indian channels.
const DefaultSourceURL = "https://raw.githubusercontent.com/iptv-org/iptv/refs/heads/master/streams/in.m3u"

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address      string        `yaml:"address"`
		Port         string        `yaml:"port"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"http"`

	// Upstream playlist settings
	Source struct {
		URL      string        `yaml:"url"`
		Timeout  time.Duration `yaml:"timeout"`
		MaxBytes int64         `yaml:"max_bytes"`
	} `yaml:"source"`

	// Matching settings
	Matching struct {
		Mode string `yaml:"mode"`
	} `yaml:"matching"`

	// Output settings
	Output struct {
		Filename string `yaml:"filename"`
	} `yaml:"output"`

	// LineupFile optionally replaces the compiled-in lineup
	LineupFile string `yaml:"lineup_file"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR
	LogLevel string `yaml:"log_level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	// HTTP defaults
	cfg.HTTP.Address = "0.0.0.0"
	cfg.HTTP.Port = "8080"
	cfg.HTTP.ReadTimeout = 15 * time.Second
	cfg.HTTP.WriteTimeout = 60 * time.Second
	cfg.HTTP.IdleTimeout = 60 * time.Second

	// Source defaults
	cfg.Source.URL = DefaultSourceURL
	cfg.Source.Timeout = 30 * time.Second
	cfg.Source.MaxBytes = 16 * 1024 * 1024 // 16MB

	cfg.Matching.Mode = string(curation.ModeExact)
	cfg.Output.Filename = "playlist.m3u"
	cfg.LogLevel = "INFO"

	return cfg
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	// Validate HTTP settings
	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	}
	if c.HTTP.ReadTimeout <= 0 {
		errors = append(errors, "HTTP read timeout must be positive")
	}
	if c.HTTP.WriteTimeout <= 0 {
		errors = append(errors, "HTTP write timeout must be positive")
	}
	if c.HTTP.IdleTimeout <= 0 {
		errors = append(errors, "HTTP idle timeout must be positive")
	}

	// Validate source settings
	if c.Source.URL == "" {
		errors = append(errors, "Source URL is required")
	} else if u, err := url.Parse(c.Source.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, fmt.Sprintf("Source URL must be an absolute http(s) URL, got %q", c.Source.URL))
	}
	if c.Source.Timeout <= 0 {
		errors = append(errors, "Source timeout must be positive")
	}
	if c.Source.MaxBytes <= 0 {
		errors = append(errors, "Source max bytes must be positive")
	}

	if _, err := curation.ParseMode(c.Matching.Mode); err != nil {
		errors = append(errors, fmt.Sprintf("Matching mode: %v", err))
	}

	// Validate output settings
	if c.Output.Filename == "" {
		errors = append(errors, "Output filename is required")
	} else if strings.ContainsAny(c.Output.Filename, "\"/\\\r\n") {
		errors = append(errors, fmt.Sprintf("Output filename %q must not contain quotes, slashes or line breaks", c.Output.Filename))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// MatchMode returns the parsed matching mode. Call it after Validate.
func (c *Config) MatchMode() curation.Mode {
	mode, err := curation.ParseMode(c.Matching.Mode)
	if err != nil {
		return curation.ModeExact
	}
	return mode
}

// Lineup returns the lineup from LineupFile, or the compiled-in one when no
// file is configured.
func (c *Config) Lineup() (lineup.Lineup, error) {
	if c.LineupFile == "" {
		return lineup.Default(), nil
	}
	return lineup.LoadFile(c.LineupFile)
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// A relative lineup path is resolved against the config file directory
	if cfg.LineupFile != "" && !filepath.IsAbs(cfg.LineupFile) {
		cfg.LineupFile = filepath.Join(filepath.Dir(path), cfg.LineupFile)
	}

	return cfg, nil
}

// Load loads configuration from a file (if provided) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	if configPath == "" {
		configPath = "config.yaml"
	}

	var cfg *Config

	// Try to load from file if it exists
	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		// File doesn't exist, use defaults
		cfg = Default()
	}

	// Apply environment variable overrides
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envParser is a helper for parsing environment variables with validation
type envParser struct {
	errors []string
}

// parseString copies a non-empty environment variable into target
func (p *envParser) parseString(envName string, target *string) {
	if val := os.Getenv(envName); val != "" {
		*target = val
	}
}

// parseDuration parses a duration environment variable, ensuring it's positive
func (p *envParser) parseDuration(envName string, target *time.Duration) {
	val := os.Getenv(envName)
	if val == "" {
		return
	}

	duration, err := time.ParseDuration(val)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("%s: invalid duration format (use '30s', '1m', etc.)", envName))
		return
	}

	if duration <= 0 {
		p.errors = append(p.errors, fmt.Sprintf("%s must be positive", envName))
		return
	}

	*target = duration
}

// parseInt64 parses an integer environment variable, ensuring it's positive
func (p *envParser) parseInt64(envName string, target *int64) {
	val := os.Getenv(envName)
	if val == "" {
		return
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		p.errors = append(p.errors, fmt.Sprintf("%s: invalid integer", envName))
		return
	}

	if n <= 0 {
		p.errors = append(p.errors, fmt.Sprintf("%s must be positive", envName))
		return
	}

	*target = n
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	p := &envParser{}

	p.parseString("HTTP_ADDRESS", &cfg.HTTP.Address)
	p.parseString("HTTP_PORT", &cfg.HTTP.Port)

	p.parseString("SOURCE_URL", &cfg.Source.URL)
	p.parseDuration("SOURCE_TIMEOUT", &cfg.Source.Timeout)
	p.parseInt64("SOURCE_MAX_BYTES", &cfg.Source.MaxBytes)

	p.parseString("MATCHING_MODE", &cfg.Matching.Mode)
	p.parseString("OUTPUT_FILENAME", &cfg.Output.Filename)
	p.parseString("LINEUP_FILE", &cfg.LineupFile)
	p.parseString("LOG_LEVEL", &cfg.LogLevel)

	if len(p.errors) > 0 {
		return fmt.Errorf("%s", strings.Join(p.errors, "; "))
	}

	return nil
}
