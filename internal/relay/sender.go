package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aleister1102/embedforge/internal/config"
	"github.com/aleister1102/embedforge/internal/httpclient"
	"github.com/rs/zerolog"
)

// Relay validates a composed embed, posts it to the caller-supplied Discord
// webhook and maps Discord's response to a normalized result. It performs no
// retries: every failure is terminal for the request.
type Relay struct {
	logger     zerolog.Logger
	httpClient *httpclient.HTTPClient
	cfg        config.RelayConfig
}

// NewRelay creates a new Relay instance
func NewRelay(cfg config.RelayConfig, logger zerolog.Logger, client *httpclient.HTTPClient) *Relay {
	return &Relay{
		logger:     logger.With().Str("module", "Relay").Logger(),
		httpClient: client,
		cfg:        cfg,
	}
}

// Send runs the full send-embed flow and returns the HTTP status code and
// response body to hand back to the caller.
func (r *Relay) Send(ctx context.Context, req *SendEmbedRequest) (int, SendResponse) {
	if err := ValidateRequest(req); err != nil {
		r.logger.Debug().Str("field", err.Field).Str("reason", err.Message).Msg("Send-embed request rejected")
		return http.StatusBadRequest, SendResponse{Success: false, Message: err.Message}
	}

	embed := BuildEmbed(&req.Embed)
	payload := BuildMessagePayload(&req.Webhook, embed)

	// Cosmetic pause so the composer's progress indicator has time to
	// animate. Not a retry or backoff; configurable down to zero.
	if err := r.sendDelay(ctx); err != nil {
		return http.StatusInternalServerError, SendResponse{Success: false, Message: err.Error()}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to marshal webhook payload")
		return http.StatusInternalServerError, SendResponse{Success: false, Message: err.Error()}
	}

	resp, err := r.httpClient.Do(&httpclient.HTTPRequest{
		URL:    req.Webhook.URL,
		Method: http.MethodPost,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body:    bytes.NewReader(body),
		Context: ctx,
	})
	if err != nil {
		r.logger.Error().Err(err).Str("webhook_url", req.Webhook.URL).Msg("Webhook send failed")
		return http.StatusInternalServerError, SendResponse{
			Success: false,
			Message: err.Error(),
			Details: "Please check your webhook URL and embed content format.",
		}
	}

	if !resp.IsSuccess() {
		status, mapped := r.mapDownstreamError(resp)
		r.logger.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", string(resp.Body)).
			Str("webhook_url", req.Webhook.URL).
			Msg("Discord rejected the webhook payload")
		return status, mapped
	}

	r.logger.Info().Int("status_code", resp.StatusCode).Msg("Embed sent successfully")
	return http.StatusOK, r.successResponse(resp.Body)
}

// sendDelay waits for the configured cosmetic delay, honoring cancellation.
func (r *Relay) sendDelay(ctx context.Context) error {
	if r.cfg.SendDelayMs <= 0 {
		return nil
	}
	timer := time.NewTimer(time.Duration(r.cfg.SendDelayMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// successResponse extracts the message and channel IDs echoed by Discord,
// tolerating an empty or unparseable body.
func (r *Relay) successResponse(body []byte) SendResponse {
	var data struct {
		ID        string `json:"id"`
		ChannelID string `json:"channel_id"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		data.ID = ""
		data.ChannelID = ""
	}
	if data.ID == "" {
		data.ID = "unknown"
	}
	if data.ChannelID == "" {
		data.ChannelID = "unknown"
	}
	return SendResponse{
		Success:   true,
		Message:   "Embed sent successfully",
		MessageID: data.ID,
		ChannelID: data.ChannelID,
	}
}

// mapDownstreamError translates Discord's error responses into the messages
// the composer shows. The raw body always travels along in Details.
func (r *Relay) mapDownstreamError(resp *httpclient.HTTPResponse) (int, SendResponse) {
	errorText := string(resp.Body)

	var errorData map[string]any
	if err := json.Unmarshal(resp.Body, &errorData); err != nil {
		errorData = nil
	}

	message := "Failed to send webhook"
	switch resp.StatusCode {
	case http.StatusNotFound:
		message = "Unknown webhook: The webhook does not exist or has been deleted"
	case http.StatusUnauthorized:
		message = "Invalid webhook token"
	case http.StatusTooManyRequests:
		message = "Rate limited: Too many requests, please try again later"
	case http.StatusBadRequest:
		message = badRequestMessage(errorData)
	}

	var code any = resp.StatusCode
	if errorData != nil {
		if c, ok := errorData["code"]; ok {
			code = c
		}
	}

	return resp.StatusCode, SendResponse{
		Success: false,
		Message: message,
		Code:    code,
		Details: errorText,
	}
}

// badRequestMessage inspects Discord's 400 body for the specific complaint.
func badRequestMessage(errorData map[string]any) string {
	if errorData == nil {
		return "Invalid request format"
	}

	if usernameErr, ok := errorData["username"]; ok {
		if items, ok := usernameErr.([]any); ok && len(items) > 0 {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				parts = append(parts, fmt.Sprint(item))
			}
			return "Username error: " + strings.Join(parts, ", ")
		}
	}

	if msg, ok := errorData["message"].(string); ok && msg != "" {
		return msg
	}

	return "Invalid request format"
}
