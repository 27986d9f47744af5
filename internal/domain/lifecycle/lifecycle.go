// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown work such as DB pings and
// HTTP server drain.
const DefaultTimeout = 10 * time.Second
