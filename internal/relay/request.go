package relay

// WebhookSettings is the caller-supplied webhook target.
type WebhookSettings struct {
	URL     string `json:"url"`
	Name    string `json:"name,omitempty"`
	Avatar  string `json:"avatar,omitempty"`
	Content string `json:"content,omitempty"`
}

// AuthorSpec mirrors the composer's author sub-form.
type AuthorSpec struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// FooterSpec mirrors the composer's footer sub-form.
type FooterSpec struct {
	Text    string `json:"text,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

// FieldSpec is a single composed embed field.
type FieldSpec struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// EmbedSpec is the embed as composed in the UI: color is still a hex string
// and image/thumbnail are plain URLs, not yet wrapped into wire sub-objects.
type EmbedSpec struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	Color       string      `json:"color,omitempty"`
	Timestamp   string      `json:"timestamp,omitempty"`
	Author      AuthorSpec  `json:"author,omitempty"`
	Thumbnail   string      `json:"thumbnail,omitempty"`
	Image       string      `json:"image,omitempty"`
	Fields      []FieldSpec `json:"fields,omitempty"`
	Footer      FooterSpec  `json:"footer,omitempty"`
}

// SendEmbedRequest is the inbound payload of POST /api/send-embed.
type SendEmbedRequest struct {
	Webhook WebhookSettings `json:"webhook"`
	Embed   EmbedSpec       `json:"embed"`
}

// SendResponse is the normalized JSON body returned to the caller for both
// success and failure outcomes.
type SendResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	Code      any    `json:"code,omitempty"`
	Details   string `json:"details,omitempty"`
}
