package discord

import (
	"strings"
	"time"
)

// EmbedBuilder accumulates embed data through chained setters and produces a
// minimal Discord-compatible Embed. No limit enforcement happens here; the
// relay validator owns that.
type EmbedBuilder struct {
	title       string
	description string
	url         string
	color       *int
	timestamp   string
	author      EmbedAuthor
	footer      EmbedFooter
	imageURL    string
	thumbURL    string
	fields      []EmbedField
}

// NewEmbedBuilder creates a new embed builder
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{}
}

// SetTitle sets the embed title
func (eb *EmbedBuilder) SetTitle(title string) *EmbedBuilder {
	eb.title = title
	return eb
}

// SetDescription sets the embed description
func (eb *EmbedBuilder) SetDescription(description string) *EmbedBuilder {
	eb.description = description
	return eb
}

// SetURL sets the embed URL
func (eb *EmbedBuilder) SetURL(url string) *EmbedBuilder {
	eb.url = url
	return eb
}

// SetColor sets the embed color as a 24-bit integer
func (eb *EmbedBuilder) SetColor(color int) *EmbedBuilder {
	eb.color = &color
	return eb
}

// SetColorHex sets the embed color from a #RRGGBB string. An unparseable
// value leaves the color unset.
func (eb *EmbedBuilder) SetColorHex(color string) *EmbedBuilder {
	if value, err := ParseHexColor(color); err == nil {
		eb.color = &value
	}
	return eb
}

// SetTimestamp sets the embed timestamp. A zero time means "now".
func (eb *EmbedBuilder) SetTimestamp(timestamp time.Time) *EmbedBuilder {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}
	eb.timestamp = timestamp.Format(time.RFC3339)
	return eb
}

// SetTimestampString sets the embed timestamp from a preformatted ISO-8601 string
func (eb *EmbedBuilder) SetTimestampString(timestamp string) *EmbedBuilder {
	eb.timestamp = timestamp
	return eb
}

// SetAuthor sets the embed author
func (eb *EmbedBuilder) SetAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.author = EmbedAuthor{Name: name, URL: url, IconURL: iconURL}
	return eb
}

// SetFooter sets the embed footer
func (eb *EmbedBuilder) SetFooter(text, iconURL string) *EmbedBuilder {
	eb.footer = EmbedFooter{Text: text, IconURL: iconURL}
	return eb
}

// SetImage sets the embed image URL
func (eb *EmbedBuilder) SetImage(url string) *EmbedBuilder {
	eb.imageURL = url
	return eb
}

// SetThumbnail sets the embed thumbnail URL
func (eb *EmbedBuilder) SetThumbnail(url string) *EmbedBuilder {
	eb.thumbURL = url
	return eb
}

// AddField appends a field to the embed
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.fields = append(eb.fields, NewEmbedField(name, value, inline))
	return eb
}

// AddFields appends multiple fields to the embed
func (eb *EmbedBuilder) AddFields(fields ...EmbedField) *EmbedBuilder {
	eb.fields = append(eb.fields, fields...)
	return eb
}

// SetFields replaces the embed's field list
func (eb *EmbedBuilder) SetFields(fields []EmbedField) *EmbedBuilder {
	eb.fields = append([]EmbedField(nil), fields...)
	return eb
}

// ClearFields removes all fields
func (eb *EmbedBuilder) ClearFields() *EmbedBuilder {
	eb.fields = nil
	return eb
}

// RemoveField removes the field at the given index. Out-of-range indexes are
// ignored.
func (eb *EmbedBuilder) RemoveField(index int) *EmbedBuilder {
	if index < 0 || index >= len(eb.fields) {
		return eb
	}
	eb.fields = append(eb.fields[:index], eb.fields[index+1:]...)
	return eb
}

// Clone deep-copies the builder's state into a new instance. Mutating the
// clone never affects the original.
func (eb *EmbedBuilder) Clone() *EmbedBuilder {
	clone := *eb
	if eb.color != nil {
		color := *eb.color
		clone.color = &color
	}
	clone.fields = append([]EmbedField(nil), eb.fields...)
	return &clone
}

// Build produces the minimal outbound embed: composite sub-objects are
// emitted only when their defining field is non-empty after trimming, and an
// empty field list is omitted entirely.
func (eb *EmbedBuilder) Build() Embed {
	embed := Embed{
		Title:       eb.title,
		Description: eb.description,
		Timestamp:   eb.timestamp,
	}

	if strings.TrimSpace(eb.url) != "" {
		embed.URL = eb.url
	}

	if eb.color != nil {
		color := *eb.color
		embed.Color = &color
	}

	if strings.TrimSpace(eb.author.Name) != "" {
		author := eb.author
		if strings.TrimSpace(author.URL) == "" {
			author.URL = ""
		}
		if strings.TrimSpace(author.IconURL) == "" {
			author.IconURL = ""
		}
		embed.Author = &author
	}

	if strings.TrimSpace(eb.footer.Text) != "" {
		footer := eb.footer
		if strings.TrimSpace(footer.IconURL) == "" {
			footer.IconURL = ""
		}
		embed.Footer = &footer
	}

	if strings.TrimSpace(eb.imageURL) != "" {
		embed.Image = NewEmbedImage(eb.imageURL)
	}

	if strings.TrimSpace(eb.thumbURL) != "" {
		embed.Thumbnail = NewEmbedThumbnail(eb.thumbURL)
	}

	if len(eb.fields) > 0 {
		embed.Fields = append([]EmbedField(nil), eb.fields...)
	}

	return embed
}
