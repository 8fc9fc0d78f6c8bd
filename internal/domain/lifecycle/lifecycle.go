// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds how long a single OnStart/OnStop hook may block.
const DefaultTimeout = 10 * time.Second
