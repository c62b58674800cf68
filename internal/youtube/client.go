package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aleister1102/embedforge/internal/config"
	"github.com/aleister1102/embedforge/internal/errorwrapper"
	"github.com/aleister1102/embedforge/internal/httpclient"
	"github.com/rs/zerolog"
)

// Channel is the reshaped channel lookup result served to the composer.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Subscribers string `json:"subscribers"`
}

// channelListResponse is the subset of the YouTube Data API response we read.
type channelListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Title      string `json:"title"`
			Thumbnails struct {
				Default struct {
					URL string `json:"url"`
				} `json:"default"`
			} `json:"thumbnails"`
		} `json:"snippet"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Client proxies channel lookups to the YouTube Data API.
type Client struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	cfg        config.YouTubeConfig
}

// NewClient creates a new YouTube lookup client
func NewClient(cfg config.YouTubeConfig, logger zerolog.Logger, client *httpclient.HTTPClient) *Client {
	return &Client{
		logger:     logger.With().Str("module", "YouTubeClient").Logger(),
		httpClient: client,
		cfg:        cfg,
	}
}

// LookupChannel resolves a channel handle to its id, title, avatar and
// subscriber count. Failures carry an HTTPError so the transport layer can
// mirror the upstream status.
func (c *Client) LookupChannel(ctx context.Context, handle string) (*Channel, error) {
	if c.cfg.APIKey == "" {
		c.logger.Error().Msg("YouTube API key is not configured")
		return nil, errorwrapper.NewHTTPError(http.StatusInternalServerError, "YouTube API key is not configured.")
	}

	apiURL := fmt.Sprintf("%s/channels?part=snippet,statistics&forHandle=%s&key=%s",
		c.cfg.APIBaseURL, url.QueryEscape(handle), url.QueryEscape(c.cfg.APIKey))

	resp, err := c.httpClient.Do(&httpclient.HTTPRequest{
		URL:     apiURL,
		Method:  http.MethodGet,
		Context: ctx,
	})
	if err != nil {
		c.logger.Error().Err(err).Str("handle", handle).Msg("YouTube API request failed")
		return nil, errorwrapper.NewHTTPError(http.StatusInternalServerError, "Failed to fetch data from YouTube API.")
	}

	// The YouTube API answers some failures with HTML error pages; treat
	// any non-JSON response the same as an error status.
	contentType := resp.Headers["Content-Type"]
	if !resp.IsSuccess() || !strings.Contains(contentType, "application/json") {
		c.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("handle", handle).
			Str("response_body", string(resp.Body)).
			Msg("YouTube API returned an error response")
		return nil, errorwrapper.NewHTTPError(resp.StatusCode,
			fmt.Sprintf("YouTube API returned a non-JSON response for handle '%s'.", handle))
	}

	var data channelListResponse
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return nil, errorwrapper.NewHTTPError(http.StatusInternalServerError, "Failed to fetch data from YouTube API.")
	}

	if len(data.Items) == 0 {
		return nil, errorwrapper.NewHTTPError(http.StatusNotFound,
			fmt.Sprintf("Channel with handle '%s' not found.", handle))
	}

	channel := data.Items[0]
	return &Channel{
		ID:          channel.ID,
		Name:        channel.Snippet.Title,
		Avatar:      channel.Snippet.Thumbnails.Default.URL,
		Subscribers: channel.Statistics.SubscriberCount,
	}, nil
}
