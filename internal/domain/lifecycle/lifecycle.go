// Package lifecycle holds shared process lifecycle constants.
package lifecycle

import "time"

// DefaultTimeout is the grace period for startup pings and graceful shutdown.
// When it elapses, in-flight work is abandoned and the process exits.
const DefaultTimeout = 10 * time.Second
