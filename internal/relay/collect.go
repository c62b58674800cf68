package relay

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aleister1102/embedforge/internal/discord"
	"github.com/aleister1102/embedforge/internal/urlhandler"
)

// ValidationReport is the outcome of a collect-all validation pass.
type ValidationReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// CollectViolations runs every check against the request and reports all
// violations instead of stopping at the first one. The composer UI uses this
// to annotate the whole form in a single pass; the order follows the form's
// layout rather than the send path's short-circuit order.
func CollectViolations(req *SendEmbedRequest) ValidationReport {
	var errs []string

	webhook := &req.Webhook
	embed := &req.Embed

	if strings.Contains(strings.ToLower(webhook.Name), "discord") {
		errs = append(errs, "Webhook name cannot contain 'discord'")
	}

	if webhook.URL == "" {
		errs = append(errs, "Webhook URL is required")
	} else if !urlhandler.IsDiscordWebhookURL(webhook.URL) {
		errs = append(errs, "Invalid webhook URL format")
	}

	if utf8.RuneCountInString(embed.Title) > discord.MaxTitleLength {
		errs = append(errs, "Embed title cannot exceed 256 characters")
	}
	if utf8.RuneCountInString(embed.Description) > discord.MaxDescriptionLength {
		errs = append(errs, "Embed description cannot exceed 4096 characters")
	}
	if utf8.RuneCountInString(webhook.Content) > discord.MaxContentLength {
		errs = append(errs, "Message content cannot exceed 2000 characters")
	}
	if utf8.RuneCountInString(embed.Footer.Text) > discord.MaxFooterTextLength {
		errs = append(errs, "Footer text cannot exceed 2048 characters")
	}
	if utf8.RuneCountInString(embed.Author.Name) > discord.MaxAuthorNameLength {
		errs = append(errs, "Author name cannot exceed 256 characters")
	}

	urlChecks := []struct {
		value   string
		message string
	}{
		{embed.URL, "Invalid embed URL format"},
		{embed.Image, "Invalid image URL format"},
		{embed.Thumbnail, "Invalid thumbnail URL format"},
		{embed.Author.URL, "Invalid author URL format"},
		{embed.Author.IconURL, "Invalid author icon URL format"},
		{embed.Footer.IconURL, "Invalid footer icon URL format"},
		{webhook.Avatar, "Invalid avatar URL format"},
	}
	for _, check := range urlChecks {
		if err := urlhandler.ValidateAbsoluteURL(check.value); err != nil {
			errs = append(errs, check.message)
		}
	}

	if len(embed.Fields) > discord.MaxFields {
		errs = append(errs, "Embeds can have at most 25 fields")
	}
	for i, field := range embed.Fields {
		if strings.TrimSpace(field.Name) == "" {
			errs = append(errs, fmt.Sprintf("Field %d name cannot be empty", i+1))
		} else if utf8.RuneCountInString(field.Name) > discord.MaxFieldNameLength {
			errs = append(errs, fmt.Sprintf("Field %d name cannot exceed 256 characters", i+1))
		}
		if strings.TrimSpace(field.Value) == "" {
			errs = append(errs, fmt.Sprintf("Field %d value cannot be empty", i+1))
		} else if utf8.RuneCountInString(field.Value) > discord.MaxFieldValueLength {
			errs = append(errs, fmt.Sprintf("Field %d value cannot exceed 1024 characters", i+1))
		}
	}

	if embed.Color != "" && !discord.IsHexColor(embed.Color) {
		errs = append(errs, "Invalid color format. Use hex format (like #007AFF)")
	}

	return ValidationReport{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
