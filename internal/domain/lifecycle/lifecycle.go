// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle operations such as the startup DB ping and
// the HTTP server shutdown drain.
const DefaultTimeout = 10 * time.Second
