package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/aleister1102/embedforge/internal/errorwrapper"
	"github.com/aleister1102/embedforge/internal/relay"
	"github.com/aleister1102/embedforge/internal/sysmon"
)

// handleSendEmbed accepts a composed embed and relays it to Discord.
func (s *Server) handleSendEmbed(w http.ResponseWriter, r *http.Request) {
	var req relay.SendEmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, relay.SendResponse{
			Success: false,
			Message: "Invalid JSON in request body",
		}, s.logger)
		return
	}

	status, resp := s.relay.Send(r.Context(), &req)
	writeJSON(w, status, resp, s.logger)
}

// handleValidateEmbed runs the collect-all validation pass without sending.
func (s *Server) handleValidateEmbed(w http.ResponseWriter, r *http.Request) {
	var req relay.SendEmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON in request body", s.logger)
		return
	}

	report := relay.CollectViolations(&req)
	writeJSON(w, http.StatusOK, report, s.logger)
}

// handleYouTubeLookup proxies a channel handle lookup to the YouTube Data API.
func (s *Server) handleYouTubeLookup(w http.ResponseWriter, r *http.Request) {
	handle := r.URL.Query().Get("handle")
	if handle == "" {
		writeError(w, http.StatusBadRequest, "Channel handle is required.", s.logger)
		return
	}

	channel, err := s.youtube.LookupChannel(r.Context(), handle)
	if err != nil {
		var httpErr *errorwrapper.HTTPError
		if errors.As(err, &httpErr) {
			writeError(w, httpErr.StatusCode, httpErr.Message, s.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch data from YouTube API.", s.logger)
		return
	}

	writeJSON(w, http.StatusOK, channel, s.logger)
}

// serviceVersion is stamped via -ldflags at release time.
var serviceVersion = "dev"

// serviceStatus is the health report served at GET /service.
type serviceStatus struct {
	Service   string               `json:"service"`
	Version   string               `json:"version"`
	Status    string               `json:"status"`
	UptimeSec int64                `json:"uptime_sec"`
	Resources sysmon.ResourceUsage `json:"resources"`
}

// handleService reports liveness plus process resource usage.
func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, serviceStatus{
		Service:   "embedforge",
		Version:   serviceVersion,
		Status:    "ok",
		UptimeSec: int64(time.Since(s.startTime).Seconds()),
		Resources: sysmon.GetResourceUsage(),
	}, s.logger)
}
