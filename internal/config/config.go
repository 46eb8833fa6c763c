// Package config holds all adpilot configuration. Config lives in
// .adpilot/config.yaml under the workspace; credentials may also arrive via
// environment variables, which take precedence over the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all adpilot configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Google Ads API credentials and transport settings
	GoogleAds GoogleAdsConfig `yaml:"google_ads"`

	// Generative copy service
	Generation GenerationConfig `yaml:"generation"`

	// Recommendation generator defaults
	Recommend RecommendConfig `yaml:"recommend"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// GoogleAdsConfig configures the Google Ads REST transport. AccountID and
// CampaignID identify which customer the facades operate on; they are
// injected per component, never read from a process global.
type GoogleAdsConfig struct {
	DeveloperToken  string `yaml:"developer_token"`
	AccessToken     string `yaml:"access_token"`
	LoginCustomerID string `yaml:"login_customer_id"`
	AccountID       string `yaml:"account_id"`
	CampaignID      string `yaml:"campaign_id"`
	BaseURL         string `yaml:"base_url"`
	Timeout         string `yaml:"timeout"`
}

// GenerationConfig configures the generative copy client.
type GenerationConfig struct {
	APIKey     string `yaml:"api_key"`
	Model      string `yaml:"model"`
	MaxRetries int    `yaml:"max_retries"`
}

// RecommendConfig bounds a recommendation run.
type RecommendConfig struct {
	NumCampaigns   int     `yaml:"num_campaigns"`
	AdsPerCampaign int     `yaml:"ads_per_campaign"`
	KeywordsPerAd  int     `yaml:"keywords_per_ad"`
	MinFitness     float64 `yaml:"min_fitness"`
	Workers        int     `yaml:"workers"`
}

// LoggingConfig controls the category file logger.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Categories map[string]bool `yaml:"categories"`
	Level      string          `yaml:"level"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		Name:    "adpilot",
		Version: "1.0.0",
		GoogleAds: GoogleAdsConfig{
			Timeout: "60s",
		},
		Generation: GenerationConfig{
			Model:      "gemini-2.5-flash",
			MaxRetries: 5,
		},
		Recommend: RecommendConfig{
			NumCampaigns:   5,
			AdsPerCampaign: 3,
			KeywordsPerAd:  4,
			MinFitness:     0.6,
			Workers:        4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the config file location for a workspace.
func Path(workspace string) string {
	return filepath.Join(workspace, ".adpilot", "config.yaml")
}

// Load reads config from the workspace, layering file values over defaults
// and environment overrides over both. A missing file is not an error.
func Load(workspace string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(workspace))
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// Save writes the config back to the workspace.
func (c *Config) Save(workspace string) error {
	path := Path(workspace)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GoogleAdsTimeout parses the configured transport timeout, falling back to
// a minute on bad input.
func (c *Config) GoogleAdsTimeout() time.Duration {
	d, err := time.ParseDuration(c.GoogleAds.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
