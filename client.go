package trilium

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"github.com/trilium-community/trilium.go/pkg/config"
	"github.com/trilium-community/trilium.go/pkg/connection"
	"github.com/trilium-community/trilium.go/pkg/constants"
	"github.com/trilium-community/trilium.go/pkg/logger"
	"github.com/trilium-community/trilium.go/pkg/models"
)

// Client is the entry point to a Trilium server. It owns the HTTP
// transport; resource operations borrow it. A Client is either open or
// closed: operations on a closed client fail fast with ErrClientClosed.
type Client struct {
	// Notes exposes the note resource operations.
	Notes *NotesResource

	cfg    *config.Config
	conn   *connection.HTTPConnection
	logger zerolog.Logger
	closed bool
}

// New constructs an open Client. A nil cfg loads configuration from the
// environment. A missing or whitespace-only token is a ConfigError,
// raised here rather than at load time so a partially-configured Config
// can still be inspected first.
func New(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if !cfg.HasToken() {
		return nil, &config.Error{Reason: "missing token", Err: constants.ErrTokenMissing}
	}

	log := logger.New(os.Stderr, cfg.LogLevel)
	conn := connection.New(&connection.Config{
		BaseURL: cfg.URL,
		Token:   cfg.Token,
		Logger:  log,
	})

	c := &Client{
		cfg:    cfg,
		conn:   conn,
		logger: log,
	}
	c.Notes = &NotesResource{client: c}

	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() *config.Config {
	return c.cfg
}

// Connection returns the underlying transport, mainly so tests can
// install a mock http.Client.
func (c *Client) Connection() *connection.HTTPConnection {
	return c.conn
}

// AppInfo fetches server metadata via GET /etapi/app-info.
func (c *Client) AppInfo(ctx context.Context) (*models.AppInfo, error) {
	if c.closed {
		return nil, constants.ErrClientClosed
	}

	body, err := c.conn.Get(ctx, "/app-info")
	if err != nil {
		return nil, err
	}

	var info models.AppInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// TestConnection probes the server and never returns an error: any
// failure, including calling it on a closed client, is folded into the
// result's Success flag and Error text.
func (c *Client) TestConnection(ctx context.Context) *models.ConnectionTest {
	result := &models.ConnectionTest{
		ServerURL:    c.cfg.URL,
		TokenPreview: c.cfg.MaskedToken(),
	}

	info, err := c.AppInfo(ctx)
	if err != nil {
		result.Error = err.Error()
		c.logger.Warn().Err(err).Str("url", c.cfg.URL).Msg("connection test failed")
		return result
	}

	result.Success = true
	result.AppInfo = info
	c.logger.Info().
		Str("url", c.cfg.URL).
		Str("app_version", info.AppVersion).
		Msg("connection test succeeded")
	return result
}

// Close releases the transport. It is idempotent; the underlying
// resources are released exactly once.
func (c *Client) Close(ctx context.Context) error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close(ctx)
}

// checkOpen guards resource operations against use after Close.
func (c *Client) checkOpen() error {
	if c.closed {
		return constants.ErrClientClosed
	}
	return nil
}
