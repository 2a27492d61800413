package trilium_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"

	trilium "github.com/trilium-community/trilium.go"
	"github.com/trilium-community/trilium.go/pkg/config"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// newTestClient builds an open client whose transport is replaced by fn,
// so no real network calls happen.
func newTestClient(t *testing.T, fn roundTripFunc) *trilium.Client {
	t.Helper()

	client, err := trilium.New(&config.Config{
		URL:      "http://trilium.test:8081",
		Token:    "etapi-test-token",
		LogLevel: "ERROR",
	})
	if err != nil {
		t.Fatal(err)
	}
	client.Connection().SetHTTPClient(&http.Client{Transport: fn})

	return client
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func textResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     http.Header{"Content-Type": []string{"text/plain"}},
	}
}
