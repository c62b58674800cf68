package config

const (
	// Server Defaults
	DefaultServerPort             = 8080
	DefaultServerReadTimeoutSecs  = 15
	DefaultServerWriteTimeoutSecs = 15
	DefaultServerIdleTimeoutSecs  = 60
	DefaultShutdownTimeoutSecs    = 10

	// Relay Defaults
	DefaultSendDelayMs        = 1200
	DefaultRelayTimeoutSecs   = 20
	DefaultRelayDefaultColor  = "#007AFF"
	DefaultRelayAllowInsecure = false

	// YouTube Defaults
	DefaultYouTubeAPIBaseURL   = "https://www.googleapis.com/youtube/v3"
	DefaultYouTubeTimeoutSecs  = 10
	DefaultYouTubeAPIKeyEnvVar = "YOUTUBE_API_KEY"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3
)
