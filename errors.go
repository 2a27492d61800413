package trilium

import (
	"github.com/trilium-community/trilium.go/pkg/config"
	"github.com/trilium-community/trilium.go/pkg/connection"
	"github.com/trilium-community/trilium.go/pkg/constants"
	"github.com/trilium-community/trilium.go/pkg/models"
)

// The error taxonomy, re-exported so callers can branch with errors.As
// without importing the subpackages.
type (
	// ConfigError signals missing or invalid configuration, detected
	// before any network call.
	ConfigError = config.Error
	// APIError signals a non-2xx response or a transport failure.
	APIError = connection.APIError
	// ValidationError signals a payload that failed local validation.
	ValidationError = models.ValidationError
)

// ErrClientClosed is returned by any operation invoked after Close.
var ErrClientClosed = constants.ErrClientClosed
