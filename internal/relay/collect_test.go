package relay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectViolations_ValidRequest(t *testing.T) {
	report := CollectViolations(validRequest())
	assert.True(t, report.Valid)
	assert.Empty(t, report.Errors)
}

func TestCollectViolations_ReportsAllViolations(t *testing.T) {
	req := &SendEmbedRequest{
		Webhook: WebhookSettings{
			Name:   "discord relay",
			URL:    "https://example.com/hook",
			Avatar: "not-a-url",
		},
		Embed: EmbedSpec{
			Title: strings.Repeat("a", 300),
			Color: "red",
			Fields: []FieldSpec{
				{Name: "", Value: "v"},
				{Name: "n", Value: ""},
			},
		},
	}

	report := CollectViolations(req)
	require.False(t, report.Valid)
	assert.ElementsMatch(t, []string{
		"Webhook name cannot contain 'discord'",
		"Invalid webhook URL format",
		"Embed title cannot exceed 256 characters",
		"Invalid avatar URL format",
		"Field 1 name cannot be empty",
		"Field 2 value cannot be empty",
		"Invalid color format. Use hex format (like #007AFF)",
	}, report.Errors)
}

func TestCollectViolations_AvatarURLChecked(t *testing.T) {
	// the send path skips the avatar URL, the collect-all pass does not
	req := validRequest()
	req.Webhook.Avatar = "bogus"

	assert.Nil(t, ValidateRequest(req))

	report := CollectViolations(req)
	require.False(t, report.Valid)
	assert.Contains(t, report.Errors, "Invalid avatar URL format")
}

func TestCollectViolations_FieldIndexesAreOneBased(t *testing.T) {
	req := validRequest()
	req.Embed.Fields = []FieldSpec{
		{Name: "ok", Value: "ok"},
		{Name: " ", Value: strings.Repeat("a", 2000)},
	}

	report := CollectViolations(req)
	require.False(t, report.Valid)
	assert.Contains(t, report.Errors, "Field 2 name cannot be empty")
	assert.Contains(t, report.Errors, "Field 2 value cannot exceed 1024 characters")
}

func TestCollectViolations_LengthCapsCountCharacters(t *testing.T) {
	req := validRequest()
	req.Embed.Title = strings.Repeat("م", 256)
	req.Webhook.Content = strings.Repeat("ل", 2000)

	report := CollectViolations(req)
	assert.True(t, report.Valid)

	req.Embed.Title = strings.Repeat("م", 257)
	report = CollectViolations(req)
	require.False(t, report.Valid)
	assert.Equal(t, []string{"Embed title cannot exceed 256 characters"}, report.Errors)
}

func TestCollectViolations_MissingURL(t *testing.T) {
	req := validRequest()
	req.Webhook.URL = ""

	report := CollectViolations(req)
	require.False(t, report.Valid)
	assert.Equal(t, []string{"Webhook URL is required"}, report.Errors)
}
