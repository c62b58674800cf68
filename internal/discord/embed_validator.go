package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/aleister1102/embedforge/internal/errorwrapper"
)

// EmbedValidator validates built Embed objects against Discord's limits
type EmbedValidator struct{}

// NewEmbedValidator creates a new embed validator
func NewEmbedValidator() *EmbedValidator {
	return &EmbedValidator{}
}

// ValidateEmbed validates a Discord embed
func (ev *EmbedValidator) ValidateEmbed(embed Embed) error {
	if utf8.RuneCountInString(embed.Title) > MaxTitleLength {
		return errorwrapper.NewValidationError("title", embed.Title, "title cannot exceed 256 characters")
	}

	if utf8.RuneCountInString(embed.Description) > MaxDescriptionLength {
		return errorwrapper.NewValidationError("description", embed.Description, "description cannot exceed 4096 characters")
	}

	if len(embed.Fields) > MaxFields {
		return errorwrapper.NewValidationError("fields", embed.Fields, "cannot have more than 25 fields")
	}

	for i, field := range embed.Fields {
		if field.Name == "" {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot be empty", i))
		}
		if utf8.RuneCountInString(field.Name) > MaxFieldNameLength {
			return errorwrapper.NewValidationError("field_name", field.Name, fmt.Sprintf("field %d name cannot exceed 256 characters", i))
		}
		if field.Value == "" {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot be empty", i))
		}
		if utf8.RuneCountInString(field.Value) > MaxFieldValueLength {
			return errorwrapper.NewValidationError("field_value", field.Value, fmt.Sprintf("field %d value cannot exceed 1024 characters", i))
		}
	}

	if embed.Footer != nil && utf8.RuneCountInString(embed.Footer.Text) > MaxFooterTextLength {
		return errorwrapper.NewValidationError("footer_text", embed.Footer.Text, "footer text cannot exceed 2048 characters")
	}

	if embed.Author != nil && utf8.RuneCountInString(embed.Author.Name) > MaxAuthorNameLength {
		return errorwrapper.NewValidationError("author_name", embed.Author.Name, "author name cannot exceed 256 characters")
	}

	return nil
}
