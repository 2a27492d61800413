// The [trilium] package is a typed Go client for the TriliumNext ETAPI.
//
// # Client
//
// Construct a [Client] with [New]. Configuration comes from the
// environment ([github.com/trilium-community/trilium.go/pkg/config]):
// TRILIUM_URL, TRILIUM_TOKEN and LOG_LEVEL, optionally via a .env file.
// A client without a token fails construction before any network call.
//
// # Resource operations
//
// Note operations live on [Client.Notes]: create, get, get-content,
// sparse update, update-content, delete and search. Each call is one
// blocking HTTP round trip; there are no background tasks and no retries.
//
// # Errors
//
// Every operation fails with exactly one of three kinds: [ConfigError]
// (pre-flight, local), [ValidationError] (local, before the network) or
// [APIError] (remote or transport). [Client.TestConnection] is the one
// place failures are swallowed: it always returns a connection-test
// result with a success flag and optional error text.
package trilium
