package discord

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder_ChainedSetters(t *testing.T) {
	embed := NewEmbedBuilder().
		SetTitle("Release notes").
		SetDescription("What changed this week").
		SetURL("https://example.com/releases").
		SetColorHex("#007AFF").
		AddField("Version", "1.2.3", true).
		AddField("Channel", "stable", true).
		Build()

	assert.Equal(t, "Release notes", embed.Title)
	assert.Equal(t, "What changed this week", embed.Description)
	assert.Equal(t, "https://example.com/releases", embed.URL)
	require.NotNil(t, embed.Color)
	assert.Equal(t, 31487, *embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "Version", embed.Fields[0].Name)
	assert.Equal(t, "Channel", embed.Fields[1].Name)
}

func TestEmbedBuilder_SetColorHexInvalidLeavesColorUnset(t *testing.T) {
	embed := NewEmbedBuilder().
		SetTitle("colored").
		SetColorHex("not-a-color").
		Build()

	assert.Nil(t, embed.Color)

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "color")
}

func TestEmbedBuilder_ColorZeroSurvivesSerialization(t *testing.T) {
	// black (#000000) parses to 0 and must still reach the wire
	embed := NewEmbedBuilder().SetTitle("t").SetColorHex("#000000").Build()
	require.NotNil(t, embed.Color)
	assert.Equal(t, 0, *embed.Color)

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t","color":0}`, string(data))

	embed = NewEmbedBuilder().SetColor(0).Build()
	data, err = json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":0}`, string(data))
}

func TestEmbedBuilder_OmitsEmptyComposites(t *testing.T) {
	embed := NewEmbedBuilder().
		SetTitle("minimal").
		SetAuthor("   ", "https://example.com", "https://example.com/icon.png").
		SetFooter("", "https://example.com/icon.png").
		SetImage("  ").
		SetThumbnail("").
		Build()

	assert.Nil(t, embed.Author, "author without a name must be omitted")
	assert.Nil(t, embed.Footer, "footer without text must be omitted")
	assert.Nil(t, embed.Image)
	assert.Nil(t, embed.Thumbnail)
	assert.Nil(t, embed.Fields)

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"minimal"}`, string(data))
}

func TestEmbedBuilder_KeepsPopulatedComposites(t *testing.T) {
	embed := NewEmbedBuilder().
		SetAuthor("octocat", "https://github.com/octocat", "").
		SetFooter("sent via embedforge", "").
		SetImage("https://example.com/banner.png").
		SetThumbnail("https://example.com/thumb.png").
		Build()

	require.NotNil(t, embed.Author)
	assert.Equal(t, "octocat", embed.Author.Name)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "sent via embedforge", embed.Footer.Text)
	require.NotNil(t, embed.Image)
	assert.Equal(t, "https://example.com/banner.png", embed.Image.URL)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://example.com/thumb.png", embed.Thumbnail.URL)
}

func TestEmbedBuilder_SetTimestampZeroMeansNow(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)
	embed := NewEmbedBuilder().SetTimestamp(time.Time{}).Build()

	parsed, err := time.Parse(time.RFC3339, embed.Timestamp)
	require.NoError(t, err)
	assert.True(t, parsed.After(before), "zero timestamp should resolve to the current time")
}

func TestEmbedBuilder_SetTimestampFormatsRFC3339(t *testing.T) {
	ts := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	embed := NewEmbedBuilder().SetTimestamp(ts).Build()
	assert.Equal(t, "2024-05-01T12:30:00Z", embed.Timestamp)
}

func TestEmbedBuilder_FieldOperations(t *testing.T) {
	builder := NewEmbedBuilder().
		AddField("a", "1", false).
		AddField("b", "2", false).
		AddField("c", "3", false)

	builder.RemoveField(1)
	embed := builder.Build()
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "a", embed.Fields[0].Name)
	assert.Equal(t, "c", embed.Fields[1].Name)

	// out-of-range removals are ignored
	builder.RemoveField(-1)
	builder.RemoveField(99)
	assert.Len(t, builder.Build().Fields, 2)

	builder.SetFields([]EmbedField{NewEmbedField("x", "9", true)})
	embed = builder.Build()
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "x", embed.Fields[0].Name)

	builder.ClearFields()
	assert.Nil(t, builder.Build().Fields)
}

func TestEmbedBuilder_CloneIsIsolated(t *testing.T) {
	original := NewEmbedBuilder().
		SetTitle("original").
		SetColor(255).
		AddField("shared", "value", false)

	clone := original.Clone().
		SetTitle("clone").
		SetColor(16711680).
		AddField("extra", "value", false)

	originalEmbed := original.Build()
	cloneEmbed := clone.Build()

	assert.Equal(t, "original", originalEmbed.Title)
	require.NotNil(t, originalEmbed.Color)
	assert.Equal(t, 255, *originalEmbed.Color)
	assert.Len(t, originalEmbed.Fields, 1)

	assert.Equal(t, "clone", cloneEmbed.Title)
	require.NotNil(t, cloneEmbed.Color)
	assert.Equal(t, 16711680, *cloneEmbed.Color)
	assert.Len(t, cloneEmbed.Fields, 2)
}

func TestEmbedBuilder_BuildIsRepeatable(t *testing.T) {
	builder := NewEmbedBuilder().SetTitle("same").AddField("a", "1", false)
	first := builder.Build()
	second := builder.Build()
	assert.Equal(t, first, second)

	// mutating one build's field slice must not leak into the next
	first.Fields[0].Name = "mutated"
	assert.Equal(t, "a", builder.Build().Fields[0].Name)
}
