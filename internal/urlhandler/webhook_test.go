package urlhandler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDiscordWebhookURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"valid", "https://discord.com/api/webhooks/123456789012345678/aBcD_eF-123", true},
		{"http scheme", "http://discord.com/api/webhooks/123/token", false},
		{"wrong host", "https://discordapp.com/api/webhooks/123/token", false},
		{"non-numeric id", "https://discord.com/api/webhooks/abc/token", false},
		{"token with invalid chars", "https://discord.com/api/webhooks/123/to ken", false},
		{"trailing segment", "https://discord.com/api/webhooks/123/token/extra", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDiscordWebhookURL(tt.url))
		})
	}
}

func TestParseDiscordWebhookURL(t *testing.T) {
	target, err := ParseDiscordWebhookURL("https://discord.com/api/webhooks/123456789012345678/aBcD_eF-123")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", target.ID)
	assert.Equal(t, "aBcD_eF-123", target.Token)
}

func TestParseDiscordWebhookURL_Invalid(t *testing.T) {
	target, err := ParseDiscordWebhookURL("https://example.com/hook")
	assert.Error(t, err)
	assert.Nil(t, target)
}
