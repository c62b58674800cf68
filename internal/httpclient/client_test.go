package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClient_Do(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "embedforge", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(2 * time.Second).
		Build()
	require.NoError(t, err)

	resp, err := client.Do(&HTTPRequest{
		URL:     srv.URL,
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    strings.NewReader(`{"hello":"world"}`),
		Context: context.Background(),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, `{"ok":true}`, string(resp.Body))
}

func TestHTTPClient_DoNetworkFailure(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(time.Second).
		Build()
	require.NoError(t, err)

	_, err = client.Do(&HTTPRequest{
		URL:    "http://127.0.0.1:1/unreachable",
		Method: http.MethodGet,
	})
	require.Error(t, err)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestHTTPResponse_IsSuccess(t *testing.T) {
	assert.True(t, (&HTTPResponse{StatusCode: 200}).IsSuccess())
	assert.True(t, (&HTTPResponse{StatusCode: 204}).IsSuccess())
	assert.False(t, (&HTTPResponse{StatusCode: 301}).IsSuccess())
	assert.False(t, (&HTTPResponse{StatusCode: 404}).IsSuccess())
	assert.False(t, (&HTTPResponse{StatusCode: 500}).IsSuccess())
}

func TestHTTPClientBuilder_Defaults(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	assert.Equal(t, 20*time.Second, cfg.Timeout)
	assert.False(t, cfg.InsecureSkipVerify)
	assert.True(t, cfg.EnableHTTP2)
	assert.Equal(t, "embedforge", cfg.UserAgent)
}
