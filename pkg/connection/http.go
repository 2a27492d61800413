// Package connection wraps the single HTTP transport used to reach the
// ETAPI surface of a Trilium server. The connection is owned by the client
// façade; resource operations borrow it for one blocking round trip each
// and never close it themselves.
package connection

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trilium-community/trilium.go/internal/rand"
	"github.com/trilium-community/trilium.go/pkg/constants"
)

// Config carries what the connection needs to reach a server.
type Config struct {
	// BaseURL is the server root, without the /etapi prefix.
	BaseURL string
	// Token is the ETAPI bearer token sent on every request.
	Token  string
	Logger zerolog.Logger
}

// HTTPConnection issues synchronous, one-round-trip ETAPI requests.
// net/http.Client is internally synchronized, so the connection itself
// adds no locking.
type HTTPConnection struct {
	BaseURL string

	token      string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New builds a connection with the default timeout. No network traffic
// happens until the first request.
func New(p *Config) *HTTPConnection {
	return &HTTPConnection{
		BaseURL: strings.TrimRight(p.BaseURL, "/"),
		token:   p.Token,
		logger:  p.Logger,
		httpClient: &http.Client{
			Timeout: constants.DefaultHTTPTimeout,
		},
	}
}

// SetTimeout overrides the per-request timeout.
func (h *HTTPConnection) SetTimeout(timeout time.Duration) *HTTPConnection {
	h.httpClient.Timeout = timeout
	return h
}

// SetHTTPClient swaps the underlying http.Client, mainly so tests can
// install a mock RoundTripper.
func (h *HTTPConnection) SetHTTPClient(client *http.Client) *HTTPConnection {
	h.httpClient = client
	return h
}

// Connect probes the server with a single app-info request.
func (h *HTTPConnection) Connect(ctx context.Context) error {
	_, err := h.Get(ctx, "/app-info")
	return err
}

// Close releases pooled transport resources. Safe to call more than once.
func (h *HTTPConnection) Close(ctx context.Context) error {
	h.httpClient.CloseIdleConnections()
	return nil
}

// Get issues GET {base}/etapi{path} and returns the raw body.
func (h *HTTPConnection) Get(ctx context.Context, path string) ([]byte, error) {
	return h.Send(ctx, http.MethodGet, path, nil, "")
}

// GetQuery issues GET {base}/etapi{path}?{query}.
func (h *HTTPConnection) GetQuery(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return h.Send(ctx, http.MethodGet, path+"?"+query.Encode(), nil, "")
}

// Post issues POST with a JSON body.
func (h *HTTPConnection) Post(ctx context.Context, path string, body []byte) ([]byte, error) {
	return h.Send(ctx, http.MethodPost, path, body, "application/json")
}

// Patch issues PATCH with a JSON body.
func (h *HTTPConnection) Patch(ctx context.Context, path string, body []byte) ([]byte, error) {
	return h.Send(ctx, http.MethodPatch, path, body, "application/json")
}

// PutText issues PUT with a plain-text body.
func (h *HTTPConnection) PutText(ctx context.Context, path string, body string) ([]byte, error) {
	return h.Send(ctx, http.MethodPut, path, []byte(body), "text/plain")
}

// Delete issues DELETE.
func (h *HTTPConnection) Delete(ctx context.Context, path string) ([]byte, error) {
	return h.Send(ctx, http.MethodDelete, path, nil, "")
}

// Send builds one ETAPI request and runs it through MakeRequest. path is
// relative to the /etapi prefix.
func (h *HTTPConnection) Send(ctx context.Context, method, path string, body []byte, contentType string) ([]byte, error) {
	if h.BaseURL == "" {
		return nil, &APIError{Message: constants.ErrNoBaseURL.Error(), Err: constants.ErrNoBaseURL}
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.BaseURL+constants.BasePath+path, reader)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Authorization", h.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	reqID := rand.NewID(constants.RequestIDLength)
	h.logger.Debug().
		Str("request_id", reqID).
		Str("method", method).
		Str("path", path).
		Msg("etapi request")

	respBody, err := h.MakeRequest(req)
	if err != nil {
		h.logger.Debug().Str("request_id", reqID).Err(err).Msg("etapi request failed")
		return nil, err
	}

	h.logger.Debug().Str("request_id", reqID).Int("bytes", len(respBody)).Msg("etapi response")
	return respBody, nil
}

// MakeRequest executes req, returning the body for 2xx responses and an
// *APIError otherwise. The ETAPI error envelope {code, message} is decoded
// when the server supplies one.
func (h *HTTPConnection) MakeRequest(req *http.Request) ([]byte, error) {
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Err: err}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return respBytes, nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(respBytes)),
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if json.Unmarshal(respBytes, &envelope) == nil && envelope.Message != "" {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}

	return nil, apiErr
}
