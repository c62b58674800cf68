package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aleister1102/embedforge/internal/errorwrapper"
	"gopkg.in/yaml.v3"
)

// GlobalConfig is the root configuration for the service.
type GlobalConfig struct {
	LogConfig     LogConfig     `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	RelayConfig   RelayConfig   `json:"relay_config,omitempty" yaml:"relay_config,omitempty"`
	ServerConfig  ServerConfig  `json:"server_config,omitempty" yaml:"server_config,omitempty"`
	YouTubeConfig YouTubeConfig `json:"youtube_config,omitempty" yaml:"youtube_config,omitempty"`
}

// NewDefaultGlobalConfig creates a GlobalConfig populated with defaults
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:     NewDefaultLogConfig(),
		RelayConfig:   NewDefaultRelayConfig(),
		ServerConfig:  NewDefaultServerConfig(),
		YouTubeConfig: NewDefaultYouTubeConfig(),
	}
}

// LoadGlobalConfig loads the configuration from a file or default locations.
// It determines the config file path using GetConfigPath, supports both JSON
// and YAML formats. YAML is preferred if the file extension is .yaml or .yml.
// A missing config file is not an error; defaults are used.
func LoadGlobalConfig(providedPath string) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()

	filePath := GetConfigPath(providedPath)
	if filePath == "" {
		return cfg, nil
	}

	if !fileExists(filePath) {
		return nil, errorwrapper.NewValidationError("config_file", filePath, "config file does not exist")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to read config file")
	}

	if err := parseConfigContent(data, filePath, cfg); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse config content")
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// parseConfigContent parses the config content based on file extension
func parseConfigContent(data []byte, filePath string, cfg *GlobalConfig) error {
	ext := filepath.Ext(filePath)
	if isYAMLFile(ext) {
		return parseYAMLConfig(data, filePath, cfg)
	}
	return parseJSONConfig(data, filePath, cfg)
}

// isYAMLFile checks if the file extension indicates a YAML file
func isYAMLFile(ext string) bool {
	return ext == ".yaml" || ext == ".yml"
}

// parseYAMLConfig parses YAML configuration
func parseYAMLConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal YAML from '%s': %w", filePath, err)
	}
	return nil
}

// parseJSONConfig parses JSON configuration
func parseJSONConfig(data []byte, filePath string, cfg *GlobalConfig) error {
	if err := json.Unmarshal(data, cfg); err != nil {
		return errorwrapper.NewError("failed to unmarshal JSON from '%s': %w", filePath, err)
	}
	return nil
}
