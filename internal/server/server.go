package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aleister1102/embedforge/internal/config"
	"github.com/aleister1102/embedforge/internal/httpclient"
	"github.com/aleister1102/embedforge/internal/relay"
	"github.com/aleister1102/embedforge/internal/youtube"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server owns the HTTP surface of the service: the webhook relay, the
// validation endpoint, the YouTube lookup proxy and the health report.
type Server struct {
	logger     zerolog.Logger
	cfg        config.ServerConfig
	httpServer *http.Server
	relay      *relay.Relay
	youtube    *youtube.Client
	startTime  time.Time
}

// New wires the server together from the global configuration.
func New(gCfg *config.GlobalConfig, logger zerolog.Logger) (*Server, error) {
	relayClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(gCfg.RelayConfig.TimeoutSecs) * time.Second).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build relay HTTP client: %w", err)
	}

	lookupClient, err := httpclient.NewHTTPClientBuilder(logger).
		WithTimeout(time.Duration(gCfg.YouTubeConfig.TimeoutSecs) * time.Second).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup HTTP client: %w", err)
	}

	s := &Server{
		logger:    logger.With().Str("module", "Server").Logger(),
		cfg:       gCfg.ServerConfig,
		relay:     relay.NewRelay(gCfg.RelayConfig, logger, relayClient),
		youtube:   youtube.NewClient(gCfg.YouTubeConfig, logger, lookupClient),
		startTime: time.Now(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.Router(),
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeoutSecs) * time.Second,
	}

	return s, nil
}

// Router builds the route table. Exposed so tests can drive handlers through
// httptest without binding a port.
func (s *Server) Router() http.Handler {
	router := mux.NewRouter()

	router.HandleFunc("/api/send-embed", s.handleSendEmbed).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/validate-embed", s.handleValidateEmbed).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/youtube", s.handleYouTubeLookup).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/service", s.handleService).Methods(http.MethodGet)

	var handler http.Handler = router
	if s.cfg.EnableCORS {
		handler = CORSMiddleware(handler)
	}
	handler = LoggingMiddleware(s.logger)(handler)
	handler = RequestIDMiddleware(handler)

	return handler
}

// Start blocks serving requests until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("HTTP server starting")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured grace period.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(s.cfg.ShutdownTimeoutSecs)*time.Second)
	defer cancel()

	s.logger.Info().Msg("HTTP server shutting down")
	return s.httpServer.Shutdown(ctx)
}
