package relay

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/embedforge/internal/discord"
	"github.com/aleister1102/embedforge/internal/errorwrapper"
	"github.com/aleister1102/embedforge/internal/urlhandler"
)

// ValidateRequest runs the ordered checks the send path requires and stops at
// the first failure. The check order is load-bearing: callers surface the
// returned message verbatim, so reordering changes user-visible behavior.
func ValidateRequest(req *SendEmbedRequest) *errorwrapper.ValidationError {
	if err := validateWebhook(&req.Webhook); err != nil {
		return err
	}
	if err := validateLengths(req); err != nil {
		return err
	}
	if err := validateFields(req.Embed.Fields); err != nil {
		return err
	}
	if err := validateURLs(&req.Embed); err != nil {
		return err
	}
	if err := validateColor(req.Embed.Color); err != nil {
		return err
	}
	return nil
}

func validateWebhook(webhook *WebhookSettings) *errorwrapper.ValidationError {
	if strings.Contains(strings.ToLower(webhook.Name), "discord") {
		return errorwrapper.NewValidationError("webhook.name", webhook.Name, "Webhook name cannot contain 'discord'")
	}
	if webhook.URL == "" {
		return errorwrapper.NewValidationError("webhook.url", webhook.URL, "Webhook URL is required")
	}
	if !urlhandler.IsDiscordWebhookURL(webhook.URL) {
		return errorwrapper.NewValidationError("webhook.url", webhook.URL, "Invalid webhook URL format")
	}
	return nil
}

func validateLengths(req *SendEmbedRequest) *errorwrapper.ValidationError {
	embed := &req.Embed
	if utf8.RuneCountInString(embed.Title) > discord.MaxTitleLength {
		return errorwrapper.NewValidationError("embed.title", embed.Title, "Embed title cannot exceed 256 characters")
	}
	if utf8.RuneCountInString(embed.Description) > discord.MaxDescriptionLength {
		return errorwrapper.NewValidationError("embed.description", embed.Description, "Embed description cannot exceed 4096 characters")
	}
	if utf8.RuneCountInString(embed.Footer.Text) > discord.MaxFooterTextLength {
		return errorwrapper.NewValidationError("embed.footer.text", embed.Footer.Text, "Footer text cannot exceed 2048 characters")
	}
	if utf8.RuneCountInString(embed.Author.Name) > discord.MaxAuthorNameLength {
		return errorwrapper.NewValidationError("embed.author.name", embed.Author.Name, "Author name cannot exceed 256 characters")
	}
	if utf8.RuneCountInString(req.Webhook.Content) > discord.MaxContentLength {
		return errorwrapper.NewValidationError("webhook.content", req.Webhook.Content, "Message content cannot exceed 2000 characters")
	}
	return nil
}

func validateFields(fields []FieldSpec) *errorwrapper.ValidationError {
	if len(fields) > discord.MaxFields {
		return errorwrapper.NewValidationError("embed.fields", len(fields), "Embeds can have at most 25 fields")
	}
	for i, field := range fields {
		if strings.TrimSpace(field.Name) == "" {
			return errorwrapper.NewValidationError(fmt.Sprintf("embed.fields[%d].name", i), field.Name, "Field name cannot be empty")
		}
		if utf8.RuneCountInString(field.Name) > discord.MaxFieldNameLength {
			return errorwrapper.NewValidationError(fmt.Sprintf("embed.fields[%d].name", i), field.Name, "Field name cannot exceed 256 characters")
		}
		if strings.TrimSpace(field.Value) == "" {
			return errorwrapper.NewValidationError(fmt.Sprintf("embed.fields[%d].value", i), field.Value, "Field value cannot be empty")
		}
		if utf8.RuneCountInString(field.Value) > discord.MaxFieldValueLength {
			return errorwrapper.NewValidationError(fmt.Sprintf("embed.fields[%d].value", i), field.Value, "Field value cannot exceed 1024 characters")
		}
	}
	return nil
}

func validateURLs(embed *EmbedSpec) *errorwrapper.ValidationError {
	checks := []struct {
		field   string
		value   string
		message string
	}{
		{"embed.url", embed.URL, "Invalid embed URL format"},
		{"embed.image", embed.Image, "Invalid image URL format"},
		{"embed.thumbnail", embed.Thumbnail, "Invalid thumbnail URL format"},
		{"embed.author.url", embed.Author.URL, "Invalid author URL format"},
		{"embed.author.icon_url", embed.Author.IconURL, "Invalid author icon URL format"},
		{"embed.footer.icon_url", embed.Footer.IconURL, "Invalid footer icon URL format"},
	}
	for _, check := range checks {
		if err := urlhandler.ValidateAbsoluteURL(check.value); err != nil {
			return errorwrapper.NewValidationError(check.field, check.value, check.message)
		}
	}
	return nil
}

func validateColor(color string) *errorwrapper.ValidationError {
	if color == "" {
		return nil
	}
	if !discord.IsHexColor(color) {
		return errorwrapper.NewValidationError("embed.color", color, "Invalid color format. Use hex format (like #007AFF)")
	}
	return nil
}
