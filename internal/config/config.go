// Package config provides configuration loading and validation for the
// ranking engine and CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Config represents tunable ranking behavior. All fields are optional in the
// JSON file; zero values fall back to defaults at merge time.
type Config struct {
	// SkillsDataset is a path to an external skill catalog JSON file.
	// Empty means the embedded dataset.
	SkillsDataset string `json:"skills_dataset,omitempty"`

	// FuzzyThreshold is the minimum similarity (0-100) for a fuzzy skill
	// match.
	FuzzyThreshold float64 `json:"fuzzy_threshold,omitempty" validate:"gte=0,lte=100"`

	// MaxNGram is the widest token window scanned for multi-word skills.
	MaxNGram int `json:"max_ngram,omitempty" validate:"gte=1,lte=5"`

	// TargetYears overrides the experience target. Zero derives the target
	// from the job description, falling back to the engine default.
	TargetYears float64 `json:"target_years,omitempty" validate:"gte=0,lte=60"`

	// Workers caps concurrent per-resume computations in a batch.
	Workers int `json:"workers,omitempty" validate:"gte=1,lte=256"`

	// TopN limits how many candidates the comparison report covers.
	TopN int `json:"top_n,omitempty" validate:"gte=1"`
}

// Default returns the tuned default configuration.
func Default() *Config {
	return &Config{
		FuzzyThreshold: 85,
		MaxNGram:       3,
		TargetYears:    0,
		Workers:        4,
		TopN:           5,
	}
}

// Load reads configuration from a JSON file and validates it. Fields not
// present in the file keep their Default() values.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("config validation: %w", err)
		}
		for _, fieldErr := range err.(validator.ValidationErrors) {
			return fmt.Errorf("config error: field %q fails %q", fieldErr.Field(), fieldErr.Tag())
		}
	}

	if c.SkillsDataset != "" {
		if _, err := os.Stat(c.SkillsDataset); os.IsNotExist(err) {
			return fmt.Errorf("config error: skills dataset not found: %s", c.SkillsDataset)
		}
	}

	return nil
}
