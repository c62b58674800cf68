package urlhandler

import (
	"regexp"
)

// webhookURLPattern matches Discord webhook URLs and captures the numeric
// webhook ID and its token.
var webhookURLPattern = regexp.MustCompile(`^https://discord\.com/api/webhooks/(\d+)/([a-zA-Z0-9_-]+)$`)

// WebhookTarget holds the components extracted from a Discord webhook URL.
type WebhookTarget struct {
	ID    string
	Token string
}

// IsDiscordWebhookURL reports whether the raw string matches the Discord
// webhook URL shape.
func IsDiscordWebhookURL(rawURL string) bool {
	return webhookURLPattern.MatchString(rawURL)
}

// ParseDiscordWebhookURL extracts the webhook ID and token from a Discord
// webhook URL.
func ParseDiscordWebhookURL(rawURL string) (*WebhookTarget, error) {
	match := webhookURLPattern.FindStringSubmatch(rawURL)
	if match == nil {
		return nil, NewError("URL does not match the Discord webhook format")
	}

	return &WebhookTarget{
		ID:    match[1],
		Token: match[2],
	}, nil
}
