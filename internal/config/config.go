// Package config loads court-scraper configuration from a YAML file with
// defaults matching the published Karnataka High Court sources.
//
// Credentials never live in the file. Supabase and Twitter secrets are read
// from environment variables by the packages that need them.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/shivaraj-arch/court-scraper/internal/causelist"
)

// Config represents the application configuration
type Config struct {
	// Document sources
	Sources struct {
		CauseListURL    string `yaml:"cause_list_url"`
		DisplayBoardURL string `yaml:"display_board_url"`
		TimeoutSeconds  int    `yaml:"timeout_seconds"`
	} `yaml:"sources"`

	// Parser settings. The case-type catalogue is configuration rather than
	// code: the official list of codes changes over time.
	Parser struct {
		CaseTypes          []string `yaml:"case_types"`
		NoiseTokens        []string `yaml:"noise_tokens"`
		SectionTerminators []string `yaml:"section_terminators"`
	} `yaml:"parser"`

	// Local output locations
	Output struct {
		ArchiveDir   string `yaml:"archive_dir"`
		DashboardDir string `yaml:"dashboard_dir"`
	} `yaml:"output"`

	// Tracking window for dashboard disclaimers
	Tracking struct {
		StartDate string `yaml:"start_date"`
	} `yaml:"tracking"`
}

const (
	defaultCauseListURL    = "https://judiciary.karnataka.gov.in/pdfs/consolidatedCauselist/blrconsolidation.pdf"
	defaultDisplayBoardURL = "https://judiciary.karnataka.gov.in/display_board_bench.php"
	defaultTimeoutSeconds  = 30
	defaultArchiveDir      = "archive"
	defaultDashboardDir    = "docs"
	defaultTrackingStart   = "2026-01-02"
)

// DefaultCaseTypes returns the seed case-type catalogue. Compound codes sit
// ahead of their prefixes for readability only; the matcher orders candidates
// by length itself.
func DefaultCaseTypes() []string {
	return []string{
		"MFA.CROB", "MFA",
		"CRL.CCC", "CRL.P", "CRL.A", "CRL.RP",
		"WPHC", "WP", "WA",
		"COMAP", "CCC",
		"RSA", "RFA", "MSA", "OSA", "EFA",
		"RP", "CP", "CA", "ITA",
	}
}

// Load reads configuration from path, overlaying values onto the defaults.
// An empty path returns the default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Sources.CauseListURL = defaultCauseListURL
	cfg.Sources.DisplayBoardURL = defaultDisplayBoardURL
	cfg.Sources.TimeoutSeconds = defaultTimeoutSeconds
	cfg.Parser.CaseTypes = DefaultCaseTypes()
	rules := causelist.DefaultRules()
	cfg.Parser.NoiseTokens = rules.NoiseTokens
	cfg.Parser.SectionTerminators = rules.SectionTerminators
	cfg.Output.ArchiveDir = defaultArchiveDir
	cfg.Output.DashboardDir = defaultDashboardDir
	cfg.Tracking.StartDate = defaultTrackingStart

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// A file that names a section but leaves a list empty falls back to the
	// defaults rather than disabling the feature.
	if len(cfg.Parser.CaseTypes) == 0 {
		cfg.Parser.CaseTypes = DefaultCaseTypes()
	}
	if len(cfg.Parser.NoiseTokens) == 0 {
		cfg.Parser.NoiseTokens = rules.NoiseTokens
	}
	if len(cfg.Parser.SectionTerminators) == 0 {
		cfg.Parser.SectionTerminators = rules.SectionTerminators
	}
	if cfg.Sources.CauseListURL == "" {
		cfg.Sources.CauseListURL = defaultCauseListURL
	}
	if cfg.Sources.DisplayBoardURL == "" {
		cfg.Sources.DisplayBoardURL = defaultDisplayBoardURL
	}
	if cfg.Sources.TimeoutSeconds <= 0 {
		cfg.Sources.TimeoutSeconds = defaultTimeoutSeconds
	}
	if cfg.Output.ArchiveDir == "" {
		cfg.Output.ArchiveDir = defaultArchiveDir
	}
	if cfg.Output.DashboardDir == "" {
		cfg.Output.DashboardDir = defaultDashboardDir
	}
	if cfg.Tracking.StartDate == "" {
		cfg.Tracking.StartDate = defaultTrackingStart
	}

	return cfg, nil
}

// Rules converts the parser settings into the lexical rules consumed by the
// cause-list tokenizer and normalizer.
func (c *Config) Rules() causelist.Rules {
	return causelist.Rules{
		NoiseTokens:        c.Parser.NoiseTokens,
		SectionTerminators: c.Parser.SectionTerminators,
	}
}
