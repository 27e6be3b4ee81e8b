package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Date is a yaml-decodable calendar date (2006-01-02, midnight UTC).
type Date struct {
	time.Time
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	t, err := time.Parse(time.DateOnly, node.Value)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", node.Value, err)
	}
	d.Time = t
	return nil
}

type LeagueConfig struct {
	Name        string `yaml:"name"`
	Size        int    `yaml:"size"`
	DraftYear   int    `yaml:"draft_year"`
	DraftRounds int    `yaml:"draft_rounds"`
}

type TierConfig struct {
	EarlyFirst float64 `yaml:"early_first"`
	MidFirst   float64 `yaml:"mid_first"`
	LateFirst  float64 `yaml:"late_first"`
}

type ValuationsConfig struct {
	Tiers               TierConfig `yaml:"tiers"`
	FaabPerDollar       float64    `yaml:"faab_per_dollar"`
	DraftCompletionDate Date       `yaml:"draft_completion_date"`
	SeasonStartDate     Date       `yaml:"season_start_date"`
}

// SourceConfig describes the external values source: the live CSV URL plus
// the repo whose commit history serves as the snapshot directory.
type SourceConfig struct {
	ValuesURL      string `yaml:"values_url"`
	APIBaseURL     string `yaml:"api_base_url"`
	RawBaseURL     string `yaml:"raw_base_url"`
	Repo           string `yaml:"repo"`
	ValuesPath     string `yaml:"values_path"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
	LookbackDays   int    `yaml:"lookback_days"`
}

type ValidationConfig struct {
	MaxZeroValueFraction float64 `yaml:"max_zero_value_fraction"`
}

type Config struct {
	League     LeagueConfig     `yaml:"league"`
	Valuations ValuationsConfig `yaml:"valuations"`
	Source     SourceConfig     `yaml:"source"`
	Validation ValidationConfig `yaml:"validation"`

	// DraftOrder lists round 1 origin owners by slot. Rounds 2..N repeat
	// the same order (linear draft).
	DraftOrder []string `yaml:"draft_order"`
}

func Load(path string) (*Config, error) {
	if env := os.Getenv("DYNASTY_CONFIG"); env != "" {
		path = env
	}
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(f, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.League.Size <= 0 {
		return fmt.Errorf("league size must be positive")
	}
	if c.League.DraftYear == 0 {
		return fmt.Errorf("league draft year is required")
	}
	if c.League.DraftRounds <= 0 {
		return fmt.Errorf("league draft rounds must be positive")
	}
	if len(c.DraftOrder) != c.League.Size {
		return fmt.Errorf("draft order has %d slots, league size is %d", len(c.DraftOrder), c.League.Size)
	}
	if c.Valuations.FaabPerDollar < 0 {
		return fmt.Errorf("faab_per_dollar cannot be negative")
	}
	if c.Valuations.DraftCompletionDate.IsZero() {
		return fmt.Errorf("draft_completion_date is required")
	}
	if c.Valuations.SeasonStartDate.IsZero() {
		return fmt.Errorf("season_start_date is required")
	}
	if c.Source.ValuesURL == "" {
		return fmt.Errorf("source values_url is required")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source timeout must be positive")
	}
	if c.Source.LookbackDays <= 0 {
		return fmt.Errorf("source lookback_days must be positive")
	}
	if c.Validation.MaxZeroValueFraction <= 0 || c.Validation.MaxZeroValueFraction > 1 {
		return fmt.Errorf("max_zero_value_fraction must be in (0, 1]")
	}
	return nil
}
