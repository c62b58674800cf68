package config

// ServerConfig defines configuration for the HTTP server
type ServerConfig struct {
	EnableCORS          bool `json:"enable_cors" yaml:"enable_cors"`
	IdleTimeoutSecs     int  `json:"idle_timeout_secs,omitempty" yaml:"idle_timeout_secs,omitempty" validate:"omitempty,min=1"`
	Port                int  `json:"port,omitempty" yaml:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	ReadTimeoutSecs     int  `json:"read_timeout_secs,omitempty" yaml:"read_timeout_secs,omitempty" validate:"omitempty,min=1"`
	ShutdownTimeoutSecs int  `json:"shutdown_timeout_secs,omitempty" yaml:"shutdown_timeout_secs,omitempty" validate:"omitempty,min=1"`
	WriteTimeoutSecs    int  `json:"write_timeout_secs,omitempty" yaml:"write_timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultServerConfig creates default server configuration
func NewDefaultServerConfig() ServerConfig {
	return ServerConfig{
		EnableCORS:          true,
		IdleTimeoutSecs:     DefaultServerIdleTimeoutSecs,
		Port:                DefaultServerPort,
		ReadTimeoutSecs:     DefaultServerReadTimeoutSecs,
		ShutdownTimeoutSecs: DefaultShutdownTimeoutSecs,
		WriteTimeoutSecs:    DefaultServerWriteTimeoutSecs,
	}
}
