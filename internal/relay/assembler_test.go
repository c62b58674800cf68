package relay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmbed_FullSpec(t *testing.T) {
	spec := &EmbedSpec{
		Title:       "Deploy finished",
		Description: "All checks green",
		URL:         "https://example.com/deploys/42",
		Color:       "#007AFF",
		Timestamp:   "2024-05-01T12:30:00Z",
		Author:      AuthorSpec{Name: "ci-bot", URL: "https://example.com/ci", IconURL: "https://example.com/ci.png"},
		Thumbnail:   "https://example.com/thumb.png",
		Image:       "https://example.com/banner.png",
		Footer:      FooterSpec{Text: "build 42", IconURL: "https://example.com/footer.png"},
		Fields: []FieldSpec{
			{Name: "Duration", Value: "3m12s", Inline: true},
			{Name: "Commit", Value: "abc1234", Inline: true},
		},
	}

	embed := BuildEmbed(spec)

	assert.Equal(t, "Deploy finished", embed.Title)
	assert.Equal(t, "All checks green", embed.Description)
	assert.Equal(t, "https://example.com/deploys/42", embed.URL)
	require.NotNil(t, embed.Color)
	assert.Equal(t, 31487, *embed.Color)
	assert.Equal(t, "2024-05-01T12:30:00Z", embed.Timestamp)
	require.NotNil(t, embed.Author)
	assert.Equal(t, "ci-bot", embed.Author.Name)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "build 42", embed.Footer.Text)
	require.NotNil(t, embed.Image)
	require.NotNil(t, embed.Thumbnail)
	require.Len(t, embed.Fields, 2)
	assert.True(t, embed.Fields[0].Inline)
}

func TestBuildEmbed_SparseSpecOmitsComposites(t *testing.T) {
	embed := BuildEmbed(&EmbedSpec{Description: "just text"})

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"description":"just text"}`, string(data))
}

func TestBuildEmbed_BlackColorKeptOnTheWire(t *testing.T) {
	embed := BuildEmbed(&EmbedSpec{Title: "t", Color: "#000000"})

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","color":0}`, string(data))
}

func TestBuildMessagePayload(t *testing.T) {
	webhook := &WebhookSettings{
		Name:    "release-bot",
		Avatar:  "https://example.com/avatar.png",
		Content: "New release!",
	}
	embed := BuildEmbed(&EmbedSpec{Title: "v1.2.3"})

	payload := BuildMessagePayload(webhook, embed)

	assert.Equal(t, "release-bot", payload.Username)
	assert.Equal(t, "https://example.com/avatar.png", payload.AvatarURL)
	assert.Equal(t, "New release!", payload.Content)
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "v1.2.3", payload.Embeds[0].Title)
}

func TestBuildMessagePayload_EmptyAvatarOmitted(t *testing.T) {
	payload := BuildMessagePayload(&WebhookSettings{}, BuildEmbed(&EmbedSpec{Title: "t"}))

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "avatar_url")
}
