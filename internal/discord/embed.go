package discord

// Discord's documented embed limits.
const (
	MaxTitleLength       = 256
	MaxDescriptionLength = 4096
	MaxFooterTextLength  = 2048
	MaxAuthorNameLength  = 256
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	MaxFields            = 25
	MaxContentLength     = 2000
)

// Embed represents a Discord embed object.
type Embed struct {
	Title       string          `json:"title,omitempty"`       // Title of embed
	Description string          `json:"description,omitempty"` // Description of embed
	URL         string          `json:"url,omitempty"`         // URL of embed
	Timestamp   string          `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int            `json:"color,omitempty"`       // Color code of the embed; nil means unset, 0 is black
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"` // Array of embed field objects
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text    string `json:"text"`               // Footer text
	IconURL string `json:"icon_url,omitempty"` // URL of footer icon (only supports http(s) and attachments)
}

// NewEmbedFooter creates a new embed footer
func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// EmbedImage represents the image of an embed.
type EmbedImage struct {
	URL string `json:"url"` // Source URL of image (only supports http(s) and attachments)
}

// NewEmbedImage creates a new embed image
func NewEmbedImage(url string) *EmbedImage {
	return &EmbedImage{URL: url}
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL string `json:"url"` // Source URL of thumbnail (only supports http(s) and attachments)
}

// NewEmbedThumbnail creates a new embed thumbnail
func NewEmbedThumbnail(url string) *EmbedThumbnail {
	return &EmbedThumbnail{URL: url}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name    string `json:"name"`               // Name of author
	URL     string `json:"url,omitempty"`      // URL of author (only supports http(s))
	IconURL string `json:"icon_url,omitempty"` // URL of author icon (only supports http(s) and attachments)
}

// NewEmbedAuthor creates a new embed author
func NewEmbedAuthor(name, url, iconURL string) *EmbedAuthor {
	return &EmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}

// EmbedField represents a field in an embed.
type EmbedField struct {
	Name   string `json:"name"`   // Name of the field
	Value  string `json:"value"`  // Value of the field
	Inline bool   `json:"inline"` // Whether or not this field should display inline
}

// NewEmbedField creates a new embed field
func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}
