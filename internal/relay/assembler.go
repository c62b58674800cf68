package relay

import (
	"github.com/aleister1102/embedforge/internal/discord"
)

// BuildEmbed assembles the outbound Discord embed from a validated spec. The
// builder applies the omission rules, so both the send path and any direct
// builder user serialize identically.
func BuildEmbed(spec *EmbedSpec) discord.Embed {
	builder := discord.NewEmbedBuilder().
		SetTitle(spec.Title).
		SetDescription(spec.Description).
		SetURL(spec.URL).
		SetImage(spec.Image).
		SetThumbnail(spec.Thumbnail).
		SetAuthor(spec.Author.Name, spec.Author.URL, spec.Author.IconURL).
		SetFooter(spec.Footer.Text, spec.Footer.IconURL)

	if spec.Color != "" {
		builder.SetColorHex(spec.Color)
	}

	if spec.Timestamp != "" {
		builder.SetTimestampString(spec.Timestamp)
	}

	for _, field := range spec.Fields {
		builder.AddField(field.Name, field.Value, field.Inline)
	}

	return builder.Build()
}

// BuildMessagePayload wraps the assembled embed into the webhook message
// payload Discord expects.
func BuildMessagePayload(webhook *WebhookSettings, embed discord.Embed) discord.MessagePayload {
	builder := discord.NewMessagePayloadBuilder().
		WithUsername(webhook.Name).
		WithContent(webhook.Content).
		AddEmbed(embed)

	if webhook.Avatar != "" {
		builder.WithAvatarURL(webhook.Avatar)
	}

	return builder.Build()
}
