package connection

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"
)

type RoundTripFunc func(req *http.Request) *http.Response

func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewTestClient returns *http.Client with Transport replaced to avoid making real calls
func NewTestClient(fn RoundTripFunc) *http.Client {
	return &http.Client{
		Transport: fn,
	}
}

type errTransport struct{ err error }

func (t errTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, t.err
}

type HTTPTestSuite struct {
	suite.Suite
}

func TestHTTPTestSuite(t *testing.T) {
	suite.Run(t, new(HTTPTestSuite))
}

func (s *HTTPTestSuite) newConnection() *HTTPConnection {
	return New(&Config{
		BaseURL: "http://trilium.test:8081",
		Token:   "etapi-token",
		Logger:  zerolog.Nop(),
	})
}

func (s *HTTPTestSuite) TestSendSetsAuthorizationAndPath() {
	conn := s.newConnection()
	conn.SetHTTPClient(NewTestClient(func(req *http.Request) *http.Response {
		s.Equal("http://trilium.test:8081/etapi/app-info", req.URL.String())
		s.Equal("etapi-token", req.Header.Get("Authorization"))

		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"appVersion":"0.92.4"}`))),
			Header:     make(http.Header),
		}
	}))

	body, err := conn.Get(context.Background(), "/app-info")
	s.Require().NoError(err)
	s.JSONEq(`{"appVersion":"0.92.4"}`, string(body))
}

func (s *HTTPTestSuite) TestMakeRequestDecodesErrorEnvelope() {
	conn := s.newConnection()
	conn.SetHTTPClient(NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewReader([]byte(`{"status":404,"code":"NOTE_NOT_FOUND","message":"Note 'abc' not found."}`))),
			Header:     make(http.Header),
		}
	}))

	_, err := conn.Get(context.Background(), "/notes/abc")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusNotFound, apiErr.StatusCode)
	s.Equal("NOTE_NOT_FOUND", apiErr.Code)
	s.Equal("Note 'abc' not found.", apiErr.Message)
}

func (s *HTTPTestSuite) TestMakeRequestNonJSONErrorBody() {
	conn := s.newConnection()
	conn.SetHTTPClient(NewTestClient(func(req *http.Request) *http.Response {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Status:     "502 Bad Gateway",
			Body:       io.NopCloser(bytes.NewReader([]byte("upstream exploded"))),
			Header:     make(http.Header),
		}
	}))

	_, err := conn.Get(context.Background(), "/app-info")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadGateway, apiErr.StatusCode)
	s.Equal("upstream exploded", apiErr.Message)
	s.Empty(apiErr.Code)
}

func (s *HTTPTestSuite) TestTransportFailureHasNoStatusCode() {
	cause := errors.New("dial tcp: connection refused")
	conn := s.newConnection()
	conn.SetHTTPClient(&http.Client{Transport: errTransport{err: cause}})

	_, err := conn.Get(context.Background(), "/app-info")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Zero(apiErr.StatusCode)
	s.ErrorIs(err, cause)
}

func (s *HTTPTestSuite) TestSendWithoutBaseURL() {
	conn := New(&Config{Logger: zerolog.Nop()})

	_, err := conn.Get(context.Background(), "/app-info")

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Contains(apiErr.Message, "base url not set")
}

func (s *HTTPTestSuite) TestPutTextContentType() {
	conn := s.newConnection()
	conn.SetHTTPClient(NewTestClient(func(req *http.Request) *http.Response {
		s.Equal(http.MethodPut, req.Method)
		s.Equal("text/plain", req.Header.Get("Content-Type"))

		payload, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		s.Equal("new body", string(payload))

		return &http.Response{
			StatusCode: http.StatusNoContent,
			Body:       io.NopCloser(bytes.NewReader(nil)),
			Header:     make(http.Header),
		}
	}))

	_, err := conn.PutText(context.Background(), "/notes/n1/content", "new body")
	s.Require().NoError(err)
}
