// Package lifecycle holds shared bounds for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook that talks to an external system.
const DefaultTimeout = 10 * time.Second
