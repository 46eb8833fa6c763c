package config

import "os"

// Environment variable names. The GOOGLE_ADS_* names match what the ads
// tooling ecosystem already uses, so existing credentials carry over.
const (
	EnvDeveloperToken  = "GOOGLE_ADS_DEVELOPER_TOKEN"
	EnvAccessToken     = "GOOGLE_ADS_ACCESS_TOKEN"
	EnvLoginCustomerID = "GOOGLE_ADS_LOGIN_CUSTOMER_ID"
	EnvGeminiAPIKey    = "GEMINI_API_KEY"
)

// applyEnvOverrides layers environment credentials over file values.
// Environment always wins so secrets can stay out of the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDeveloperToken); v != "" {
		cfg.GoogleAds.DeveloperToken = v
	}
	if v := os.Getenv(EnvAccessToken); v != "" {
		cfg.GoogleAds.AccessToken = v
	}
	if v := os.Getenv(EnvLoginCustomerID); v != "" {
		cfg.GoogleAds.LoginCustomerID = v
	}
	if v := os.Getenv(EnvGeminiAPIKey); v != "" {
		cfg.Generation.APIKey = v
	}
}
