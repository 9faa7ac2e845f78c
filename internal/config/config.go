package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config holds the settings chuckle reads from file, environment and flags.
type Config struct {
	Endpoint       string   `toml:"endpoint" env:"CHUCKLE_ENDPOINT"`
	Category       string   `toml:"category" env:"CHUCKLE_CATEGORY"`
	BlacklistFlags []string `toml:"blacklist_flags" env:"CHUCKLE_BLACKLIST_FLAGS" env-separator:","`
	UserAgent      string   `toml:"user_agent" env:"CHUCKLE_USER_AGENT"`
	LogFile        string   `toml:"log_file" env:"CHUCKLE_LOG_FILE"`
	LogLevel       string   `toml:"log_level" env:"CHUCKLE_LOG_LEVEL"`
	MetricsAddr    string   `toml:"metrics_addr" env:"CHUCKLE_METRICS_ADDR"`
}

const (
	defaultConfigPath = "~/.config/chuckle/config.toml"
	defaultLogFile    = "~/.local/state/chuckle/chuckle.log"
	defaultEndpoint   = "https://v2.jokeapi.dev"
	defaultCategory   = "Any"
	defaultLogLevel   = "info"

	stderrLog = "-"
)

// Flag names understood by ApplyFlags.
const (
	FlagEndpoint    = "endpoint"
	FlagCategory    = "category"
	FlagBlacklist   = "blacklist"
	FlagLogLevel    = "log-level"
	FlagLogFile     = "log-file"
	FlagMetricsAddr = "metrics-addr"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint: defaultEndpoint,
		Category: defaultCategory,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies CHUCKLE_* environment overrides.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := readFile(resolved, &cfg); err != nil {
		return Config{}, err
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(bytes, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyFlags overrides fields with the flags the user explicitly set on fs.
// Flags left at their defaults never replace file or environment values.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	var applyErr error
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case FlagEndpoint:
			c.Endpoint = f.Value.String()
		case FlagCategory:
			c.Category = f.Value.String()
		case FlagLogLevel:
			c.LogLevel = f.Value.String()
		case FlagLogFile:
			c.LogFile = f.Value.String()
		case FlagMetricsAddr:
			c.MetricsAddr = f.Value.String()
		case FlagBlacklist:
			flags, err := fs.GetStringSlice(FlagBlacklist)
			if err != nil {
				applyErr = fmt.Errorf("read --%s: %w", FlagBlacklist, err)
				return
			}
			c.BlacklistFlags = flags
		}
	})
	if applyErr != nil {
		return applyErr
	}
	c.normalize()
	return nil
}

func (c *Config) normalize() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		c.Category = defaultCategory
	}
	c.UserAgent = strings.TrimSpace(c.UserAgent)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	c.MetricsAddr = strings.TrimSpace(c.MetricsAddr)

	flags := c.BlacklistFlags[:0]
	for _, f := range c.BlacklistFlags {
		if f = strings.TrimSpace(f); f != "" {
			flags = append(flags, f)
		}
	}
	c.BlacklistFlags = flags

	c.LogFile = strings.TrimSpace(c.LogFile)
	switch c.LogFile {
	case "":
		c.LogFile = mustExpand(defaultLogFile)
	case stderrLog:
	default:
		c.LogFile = mustExpand(c.LogFile)
	}
}

// LogPath returns the log file path, or "" when logging goes to stderr.
func (c Config) LogPath() string {
	switch strings.TrimSpace(c.LogFile) {
	case "":
		return mustExpand(defaultLogFile)
	case stderrLog:
		return ""
	}
	return c.LogFile
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
