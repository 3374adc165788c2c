// Package config resolves zombiemd settings from defaults, an optional YAML
// file, and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lukemcguire/zombiemd/checker"
	"github.com/lukemcguire/zombiemd/logx"
)

// Output formats.
const (
	FormatAuto = "auto" // TUI on a terminal, text otherwise
	FormatTUI  = "tui"
	FormatText = "text"
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrHelp is returned by Parse when -h or --help was requested.
var ErrHelp = pflag.ErrHelp

// ErrNoFiles is returned when no Markdown documents were given.
var ErrNoFiles = errors.New("at least one Markdown file (or - for stdin) is required")

// Config holds every user-facing setting.
type Config struct {
	Files         []string      `yaml:"-"`
	Timeout       time.Duration `yaml:"timeout"`
	MaxInFlight   int           `yaml:"max_in_flight"`
	BaseURL       string        `yaml:"base_url"`
	Format        string        `yaml:"format"`
	FailOnBroken  bool          `yaml:"fail_on_broken"`
	RespectRobots bool          `yaml:"respect_robots"`
	UserAgent     string        `yaml:"user_agent"`
	LogLevel      string        `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timeout:   checker.DefaultTimeout,
		Format:    FormatAuto,
		UserAgent: checker.DefaultUserAgent,
		LogLevel:  logx.LevelWarn,
	}
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from
// the file leave cfg untouched.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// Parse builds a Config from command-line arguments (without the program name).
// Usage and flag errors are written to stderr.
func Parse(name string, args []string, stderr io.Writer) (Config, error) {
	defaults := Default()

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: %s [flags] <file.md>...\n", name)
		_, _ = fmt.Fprintln(stderr, "Checks every link in the given Markdown documents. Use - to read stdin.")
		_, _ = fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
	}

	configPath := fs.StringP("config", "c", "", "YAML config file; flags override its values")
	timeout := fs.DurationP("timeout", "t", defaults.Timeout, "per-link probe timeout")
	maxInFlight := fs.Int("max-in-flight", defaults.MaxInFlight, "maximum simultaneous probes (0 = no limit)")
	baseURL := fs.String("base-url", defaults.BaseURL, "resolve relative links against this absolute URL")
	format := fs.StringP("format", "f", defaults.Format, "output format: auto, tui, text, json, csv")
	failOnBroken := fs.Bool("fail-on-broken", defaults.FailOnBroken, "exit with status 1 when any link is broken")
	respectRobots := fs.Bool("respect-robots", defaults.RespectRobots, "skip links disallowed by the target host's robots.txt")
	userAgent := fs.String("user-agent", defaults.UserAgent, "user agent matched against robots.txt rules")
	logLevel := fs.String("log-level", defaults.LogLevel, "log level: trace, debug, info, warn, error, disabled")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := defaults
	if *configPath != "" {
		if err := LoadFile(*configPath, &cfg); err != nil {
			return Config{}, err
		}
	}

	// Flags win over the file only when set explicitly.
	if fs.Changed("timeout") {
		cfg.Timeout = *timeout
	}
	if fs.Changed("max-in-flight") {
		cfg.MaxInFlight = *maxInFlight
	}
	if fs.Changed("base-url") {
		cfg.BaseURL = *baseURL
	}
	if fs.Changed("format") {
		cfg.Format = *format
	}
	if fs.Changed("fail-on-broken") {
		cfg.FailOnBroken = *failOnBroken
	}
	if fs.Changed("respect-robots") {
		cfg.RespectRobots = *respectRobots
	}
	if fs.Changed("user-agent") {
		cfg.UserAgent = *userAgent
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = *logLevel
	}

	cfg.Files = fs.Args()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoFiles
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.MaxInFlight < 0 {
		return fmt.Errorf("max-in-flight must not be negative, got %d", c.MaxInFlight)
	}
	switch c.Format {
	case FormatAuto, FormatTUI, FormatText, FormatJSON, FormatCSV:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Base(); err != nil {
		return err
	}
	return nil
}

// Base parses BaseURL. It returns nil when no base URL is configured.
func (c Config) Base() (*url.URL, error) {
	if c.BaseURL == "" {
		return nil, nil
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", c.BaseURL)
	}
	return base, nil
}

// CheckerConfig returns the checker settings.
func (c Config) CheckerConfig() checker.Config {
	return checker.Config{
		Timeout:     c.Timeout,
		MaxInFlight: c.MaxInFlight,
		UserAgent:   c.UserAgent,
	}
}
