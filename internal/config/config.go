package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv      = "APPRANKER_CONFIG"
	lookupURLEnv       = "APPRANKER_LOOKUP_URL"
	countryEnv         = "APPRANKER_COUNTRY"
	concurrencyEnv     = "APPRANKER_CONCURRENCY"
	nameMetricEnv      = "APPRANKER_NAME_METRIC"
	logLevelEnv        = "APPRANKER_LOG_LEVEL"
	outputFormatEnv    = "APPRANKER_OUTPUT_FORMAT"
	metricsTextfileEnv = "APPRANKER_METRICS_TEXTFILE"

	defaultConcurrency = 4
)

// Config holds high-level settings required across the application.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Output   OutputConfig   `yaml:"output"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ProviderConfig describes how the catalog lookup service is contacted.
type ProviderConfig struct {
	LookupURL         string        `yaml:"lookupUrl"`
	Country           string        `yaml:"country"`
	Concurrency       int           `yaml:"concurrency"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	Burst             int           `yaml:"burst"`
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"userAgent"`
}

// ScoringConfig selects the name similarity metric; weights are fixed.
type ScoringConfig struct {
	NameMetric string `yaml:"nameMetric"`
}

// OutputConfig chooses the presenter ("text" or "json").
type OutputConfig struct {
	Format string `yaml:"format"`
}

// MetricsConfig names the Prometheus textfile written after a run (empty disables it).
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// LoggingConfig sets the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads .env and YAML configuration (if present) and applies environment overrides.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: cannot load .env: %v", err)
	}

	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg, err := Parse(raw)
			if err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.normalize()

	return cfg
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(lookupURLEnv); v != "" {
		c.Provider.LookupURL = v
	}

	if v := os.Getenv(countryEnv); v != "" {
		c.Provider.Country = v
	}

	if v := os.Getenv(concurrencyEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Provider.Concurrency = n
		} else {
			log.Printf("config: invalid %s=%q ignored", concurrencyEnv, v)
		}
	}

	if v := os.Getenv(nameMetricEnv); v != "" {
		c.Scoring.NameMetric = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(outputFormatEnv); v != "" {
		c.Output.Format = v
	}

	if v := os.Getenv(metricsTextfileEnv); v != "" {
		c.Metrics.Textfile = v
	}
}

func (c *Config) normalize() {
	if c.Provider.Concurrency <= 0 {
		c.Provider.Concurrency = defaultConcurrency
	}
	if c.Provider.Burst <= 0 {
		c.Provider.Burst = 1
	}
}

func mergeConfig(base, override Config) Config {
	if override.Provider.LookupURL != "" {
		base.Provider.LookupURL = override.Provider.LookupURL
	}
	if override.Provider.Country != "" {
		base.Provider.Country = override.Provider.Country
	}
	if override.Provider.Concurrency != 0 {
		base.Provider.Concurrency = override.Provider.Concurrency
	}
	if override.Provider.RequestsPerSecond != 0 {
		base.Provider.RequestsPerSecond = override.Provider.RequestsPerSecond
	}
	if override.Provider.Burst != 0 {
		base.Provider.Burst = override.Provider.Burst
	}
	if override.Provider.Timeout != 0 {
		base.Provider.Timeout = override.Provider.Timeout
	}
	if override.Provider.UserAgent != "" {
		base.Provider.UserAgent = override.Provider.UserAgent
	}

	if override.Scoring.NameMetric != "" {
		base.Scoring.NameMetric = override.Scoring.NameMetric
	}

	if override.Output.Format != "" {
		base.Output.Format = override.Output.Format
	}

	if override.Metrics.Textfile != "" {
		base.Metrics.Textfile = override.Metrics.Textfile
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			LookupURL:         "https://itunes.apple.com/lookup",
			Concurrency:       defaultConcurrency,
			RequestsPerSecond: 5,
			Burst:             defaultConcurrency,
			Timeout:           20 * time.Second,
			UserAgent:         "AppRanker/1.0",
		},
		Scoring: ScoringConfig{NameMetric: "ratcliff-obershelp"},
		Output:  OutputConfig{Format: "text"},
		Logging: LoggingConfig{Level: "info"},
	}
}
