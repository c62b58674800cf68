package config

// RelayConfig defines configuration for the send-embed relay.
//
// SendDelayMs is cosmetic only: it gives the composer's progress indicator
// time to animate before the webhook call fires. It carries no retry or
// backoff semantics and can be set to 0.
type RelayConfig struct {
	DefaultColor string `json:"default_color,omitempty" yaml:"default_color,omitempty" validate:"omitempty,hexcolor"`
	SendDelayMs  int    `json:"send_delay_ms,omitempty" yaml:"send_delay_ms,omitempty" validate:"omitempty,min=0"`
	TimeoutSecs  int    `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultRelayConfig creates default relay configuration
func NewDefaultRelayConfig() RelayConfig {
	return RelayConfig{
		DefaultColor: DefaultRelayDefaultColor,
		SendDelayMs:  DefaultSendDelayMs,
		TimeoutSecs:  DefaultRelayTimeoutSecs,
	}
}
