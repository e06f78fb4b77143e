// Package config provides configuration management for the SEO generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	// Embedded zone database so the pinned timezone resolves on hosts
	// without system tzdata.
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingSourceURL         = errors.New("source.url or source.file is required")
	ErrMissingDomain            = errors.New("site.domain is required")
	ErrInvalidDomain            = errors.New("site.domain must start with http:// or https://")
	ErrMissingSiteName          = errors.New("site.name is required")
	ErrInvalidMaxAttempts       = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay      = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout           = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingOutputDir         = errors.New("output.dir is required")
	ErrInvalidMonthTable        = errors.New("locale.months must contain exactly 12 names")
	ErrInvalidWeekdayTable      = errors.New("locale.weekdays must contain exactly 7 names, Sunday first")
	ErrInvalidTimezone          = errors.New("locale.timezone is not a valid IANA zone")
	ErrNoPrimaryKeywords        = errors.New("keywords.primary must contain at least one keyword")
	ErrInvalidKeywordTopN       = errors.New("keywords.top_n must be at least 1")
	ErrInvalidLogLevel          = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config is the complete generator configuration.
type Config struct {
	Source   SourceConfig   `yaml:"source"`
	Site     SiteConfig     `yaml:"site"`
	Output   OutputConfig   `yaml:"output"`
	Locale   LocaleConfig   `yaml:"locale"`
	Keywords KeywordsConfig `yaml:"keywords"`
	Retry    RetryPolicy    `yaml:"retry"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// SourceConfig points at the upstream catalogue.
type SourceConfig struct {
	URL  string `yaml:"url" env:"SEOGEN_SOURCE_URL"`
	File string `yaml:"file" env:"SEOGEN_SOURCE_FILE"`
}

// IsLocalFile returns true if this run reads the catalogue from disk.
func (s *SourceConfig) IsLocalFile() bool {
	return s.File != ""
}

// SiteConfig holds the static site identity injected into every document.
type SiteConfig struct {
	Domain         string   `yaml:"domain" env:"SEOGEN_SITE_DOMAIN"`
	Name           string   `yaml:"name" env:"SEOGEN_SITE_NAME"`
	TwitterHandle  string   `yaml:"twitter_handle" env:"SEOGEN_TWITTER_HANDLE"`
	Author         string   `yaml:"author"`
	TargetAudience string   `yaml:"target_audience"`
	SearchEngines  []string `yaml:"search_engines"`
}

// OutputConfig defines where and how artifacts are written.
type OutputConfig struct {
	Dir          string `yaml:"dir" env:"SEOGEN_OUTPUT_DIR"`
	MetadataFile string `yaml:"metadata_file"`
	SitemapFile  string `yaml:"sitemap_file"`
	KeywordsFile string `yaml:"keywords_file"`
	ManifestFile string `yaml:"manifest_file"`
	PrettyPrint  bool   `yaml:"pretty_print"`
	CreateBackup bool   `yaml:"create_backup"`
}

// LocaleConfig holds the localization tables. The month and weekday tables
// are ordered lookup tables: months[0] is January, weekdays[0] is Sunday.
type LocaleConfig struct {
	Language     string            `yaml:"language"`
	Locale       string            `yaml:"locale"`
	Timezone     string            `yaml:"timezone" env:"SEOGEN_TIMEZONE"`
	Months       []string          `yaml:"months"`
	Weekdays     []string          `yaml:"weekdays"`
	Translations map[string]string `yaml:"translations"`
	StatusLabels map[string]string `yaml:"status_labels"`
}

// KeywordsConfig holds the primary keyword list and slicing limits.
type KeywordsConfig struct {
	Primary   []string `yaml:"primary"`
	TopN      int      `yaml:"top_n"`
	BingLimit int      `yaml:"bing_limit"`
}

// RetryPolicy defines fetch retry behavior.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level" env:"SEOGEN_LOG_LEVEL"`
}

// Default returns the built-in configuration: ppv.to catalogue, Spanish
// locale tables, Europe/Madrid timezone.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			URL: "https://old.ppv.to/api/streams",
		},
		Site: SiteConfig{
			Domain:         "https://deportesenvivo.example.com",
			Name:           "Deportes En Vivo",
			TwitterHandle:  "@deportesenvivo",
			Author:         "Deportes En Vivo",
			TargetAudience: "España y Latinoamérica",
			SearchEngines:  []string{"Google", "Bing"},
		},
		Output: OutputConfig{
			Dir:          "data/seo",
			MetadataFile: "seo_metadata.json",
			SitemapFile:  "sitemap_entries.json",
			KeywordsFile: "seo_keywords.json",
			ManifestFile: "manifest.json",
			PrettyPrint:  true,
			CreateBackup: true,
		},
		Locale: LocaleConfig{
			Language: "es",
			Locale:   "es_ES",
			Timezone: "Europe/Madrid",
			Months: []string{
				"enero", "febrero", "marzo", "abril", "mayo", "junio",
				"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
			},
			Weekdays: []string{
				"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
			},
			Translations: map[string]string{
				"Football":          "Fútbol",
				"Soccer":            "Fútbol",
				"American Football": "Fútbol Americano",
				"Basketball":        "Baloncesto",
				"Baseball":          "Béisbol",
				"Tennis":            "Tenis",
				"Boxing":            "Boxeo",
				"MMA":               "Artes Marciales Mixtas",
				"Wrestling":         "Lucha Libre",
				"Motorsports":       "Automovilismo",
				"Hockey":            "Hockey",
				"Cricket":           "Críquet",
				"Rugby":             "Rugby",
				"Golf":              "Golf",
				"Darts":             "Dardos",
				"Volleyball":        "Voleibol",
				"Cycling":           "Ciclismo",
				"24/7 Streams":      "Canales 24/7",
			},
			StatusLabels: map[string]string{
				"upcoming":  "Próximamente",
				"live":      "En Vivo",
				"completed": "Finalizado",
			},
		},
		Keywords: KeywordsConfig{
			Primary: []string{
				"deportes en vivo",
				"ver deportes online gratis",
				"fútbol en vivo",
				"deportes en directo",
				"streaming deportivo gratis",
				"partidos en vivo hoy",
				"ver fútbol online",
				"baloncesto en vivo",
				"boxeo en directo",
				"transmisión deportiva en vivo",
			},
			TopN:      5,
			BingLimit: 10,
		},
		Retry: RetryPolicy{
			MaxAttempts:       3,
			InitialDelayMs:    500,
			MaxDelayMs:        30000,
			BackoffMultiplier: 2.0,
			TimeoutSec:        15,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration: defaults, overlaid by the YAML file at
// path ("" skips the file), overlaid by SEOGEN_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Source.URL == "" && c.Source.File == "" {
		return ErrMissingSourceURL
	}

	if c.Site.Domain == "" {
		return ErrMissingDomain
	}

	if !strings.HasPrefix(c.Site.Domain, "http://") && !strings.HasPrefix(c.Site.Domain, "https://") {
		return ErrInvalidDomain
	}

	if c.Site.Name == "" {
		return ErrMissingSiteName
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if len(c.Locale.Months) != 12 {
		return ErrInvalidMonthTable
	}

	if len(c.Locale.Weekdays) != 7 {
		return ErrInvalidWeekdayTable
	}

	if _, err := time.LoadLocation(c.Locale.Timezone); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Locale.Timezone)
	}

	if len(c.Keywords.Primary) == 0 {
		return ErrNoPrimaryKeywords
	}

	if c.Keywords.TopN < 1 {
		return ErrInvalidKeywordTopN
	}

	if c.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Location resolves the configured timezone. Validate guarantees the zone
// exists, so an error here means the config was never validated.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Locale.Timezone)
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	// Attempt 2 waits the initial delay; each further attempt multiplies.
	delayMs := float64(rp.InitialDelayMs)
	for i := 2; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the per-request timeout.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// String returns a short representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Source: %s, Domain: %s, Output: %s}",
		c.Source.URL,
		c.Site.Domain,
		c.Output.Dir,
	)
}
