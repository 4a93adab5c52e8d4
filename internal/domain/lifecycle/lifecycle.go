// Package lifecycle holds the timeouts shared by fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, graceful shutdown).
const DefaultTimeout = 10 * time.Second
