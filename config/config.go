// Package config holds the palindromer configuration: YAML file, defaults,
// environment overrides and translation into package options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palindromer/filter"
	"github.com/katalvlaran/palindromer/lexicon"
	"github.com/katalvlaran/palindromer/output"
	"github.com/katalvlaran/palindromer/search"
)

// Environment variables read by Load.
const (
	EnvDictionary = "PALINDROMER_DICTIONARY"
	EnvSeed       = "PALINDROMER_SEED"
	EnvGeminiKey  = "GEMINI_API_KEY"
)

// ErrInvalidConfig is returned by Validate and wraps every problem found.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Filter     FilterConfig     `yaml:"filter"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Auto       AutoConfig       `yaml:"auto"`
}

// DictionaryConfig locates the word list.
type DictionaryConfig struct {
	Path   string `yaml:"path"`
	Latin1 bool   `yaml:"latin1"`
}

// SearchConfig mirrors the search options.
type SearchConfig struct {
	Mode         string  `yaml:"mode"` // exhaustive, generative
	Reverse      bool    `yaml:"reverse"`
	MaxDepth     int     `yaml:"max_depth"`
	MaxResults   int     `yaml:"max_results"`
	Trials       int     `yaml:"trials"`
	StopLength   int     `yaml:"stop_length"`
	MaxLength    int     `yaml:"max_length"`
	MinLength    int     `yaml:"min_length"`
	ContinueProb float64 `yaml:"continue_prob"`
	Seed         int64   `yaml:"seed"` // 0: pick one per run
	Workers      int     `yaml:"workers"`
	Timeout      string  `yaml:"timeout"` // empty: no limit
}

// FilterConfig mirrors the filter options.
type FilterConfig struct {
	MaxTokens     int `yaml:"max_tokens"`
	MinWordLength int `yaml:"min_word_length"`
}

// OutputConfig selects where results go.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"` // text, sqlite
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// AutoConfig configures the refinement loop.
type AutoConfig struct {
	Iterations int    `yaml:"iterations"`
	Selector   string `yaml:"selector"` // genai, score
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	Timeout    string `yaml:"timeout"` // per selector call
}

// DefaultConfig returns the configuration the command line ships with.
func DefaultConfig() *Config {
	return &Config{
		Dictionary: DictionaryConfig{Path: "dictionary.txt"},
		Search: SearchConfig{
			Mode:         search.ModeExhaustive.String(),
			MaxDepth:     search.DefaultMaxDepth,
			MaxResults:   search.DefaultMaxResults,
			Trials:       search.DefaultTrials,
			StopLength:   search.DefaultStopLength,
			MaxLength:    search.DefaultMaxLength,
			MinLength:    search.DefaultMinLength,
			ContinueProb: search.DefaultContinueProb,
			Workers:      search.DefaultWorkers,
		},
		Filter: FilterConfig{
			MaxTokens:     filter.DefaultMaxTokens,
			MinWordLength: filter.DefaultMinWordLength,
		},
		Output: OutputConfig{
			Path:   "palindromes.txt",
			Format: output.FormatText,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Auto: AutoConfig{
			Iterations: 5,
			Selector:   "genai",
			Model:      "gemini-2.5-flash",
			Timeout:    "60s",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if p := os.Getenv(EnvDictionary); p != "" {
		c.Dictionary.Path = p
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, s, err)
		}
		c.Search.Seed = seed
	}
	if key := os.Getenv(EnvGeminiKey); key != "" {
		c.Auto.APIKey = key
	}

	return nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Dictionary.Path == "" {
		add("dictionary.path is empty")
	}

	s := c.Search
	if _, err := search.ParseMode(s.Mode); err != nil {
		add("search.mode %q is unknown", s.Mode)
	}
	if s.MaxDepth < 0 {
		add("search.max_depth %d is negative", s.MaxDepth)
	}
	if s.MaxResults < 1 {
		add("search.max_results %d must be positive", s.MaxResults)
	}
	if s.Trials < 0 || s.StopLength < 0 || s.MaxLength < 0 || s.MinLength < 0 {
		add("search trial counts and lengths must not be negative")
	}
	if s.ContinueProb < 0 || s.ContinueProb > 1 {
		add("search.continue_prob %v outside [0,1]", s.ContinueProb)
	}
	if s.Workers < 1 {
		add("search.workers %d must be positive", s.Workers)
	}
	if _, err := parseDuration(s.Timeout); err != nil {
		add("search.timeout: %v", err)
	}

	if c.Filter.MaxTokens < 0 || c.Filter.MinWordLength < 0 {
		add("filter limits must not be negative")
	}

	switch strings.ToLower(c.Output.Format) {
	case output.FormatText, output.FormatSQLite:
	default:
		add("output.format %q is unknown", c.Output.Format)
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		add("logging.level %q is unknown", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		add("logging.format %q is unknown", c.Logging.Format)
	}

	if c.Auto.Iterations < 1 {
		add("auto.iterations %d must be positive", c.Auto.Iterations)
	}
	switch c.Auto.Selector {
	case "genai", "score":
	default:
		add("auto.selector %q is unknown", c.Auto.Selector)
	}
	if _, err := parseDuration(c.Auto.Timeout); err != nil {
		add("auto.timeout: %v", err)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// Mode returns the parsed search mode.
func (c *Config) Mode() (search.Mode, error) {
	return search.ParseMode(c.Search.Mode)
}

// SearchTimeout returns the search time limit, 0 for none.
func (c *Config) SearchTimeout() time.Duration {
	d, _ := parseDuration(c.Search.Timeout)
	return d
}

// AutoTimeout returns the per-selection time limit, 0 for none.
func (c *Config) AutoTimeout() time.Duration {
	d, _ := parseDuration(c.Auto.Timeout)
	return d
}

// SearchOptions translates the search section. The seed is passed as is; the
// caller decides what a zero seed means.
func (c *Config) SearchOptions() []search.Option {
	s := c.Search
	return []search.Option{
		search.WithMaxDepth(s.MaxDepth),
		search.WithMaxResults(s.MaxResults),
		search.WithTrials(s.Trials),
		search.WithLengths(s.StopLength, s.MaxLength, s.MinLength),
		search.WithContinueProb(s.ContinueProb),
		search.WithSeed(s.Seed),
		search.WithWorkers(s.Workers),
	}
}

// FilterOptions translates the filter section.
func (c *Config) FilterOptions() []filter.Option {
	return []filter.Option{
		filter.WithMaxTokens(c.Filter.MaxTokens),
		filter.WithMinWordLength(c.Filter.MinWordLength),
	}
}

// LexiconOptions translates the dictionary section.
func (c *Config) LexiconOptions() []lexicon.Option {
	var opts []lexicon.Option
	if c.Dictionary.Latin1 {
		opts = append(opts, lexicon.WithLatin1())
	}

	return opts
}

// parseDuration accepts the empty string as zero.
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", s)
	}

	return d, nil
}
