package config

import "os"

// YouTubeConfig defines configuration for the YouTube channel lookup proxy.
// The API key is read from the environment when not set in the config file.
type YouTubeConfig struct {
	APIBaseURL  string `json:"api_base_url,omitempty" yaml:"api_base_url,omitempty" validate:"omitempty,url"`
	APIKey      string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	TimeoutSecs int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultYouTubeConfig creates default YouTube proxy configuration
func NewDefaultYouTubeConfig() YouTubeConfig {
	return YouTubeConfig{
		APIBaseURL:  DefaultYouTubeAPIBaseURL,
		APIKey:      os.Getenv(DefaultYouTubeAPIKeyEnvVar),
		TimeoutSecs: DefaultYouTubeTimeoutSecs,
	}
}
