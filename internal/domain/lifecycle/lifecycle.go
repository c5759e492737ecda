// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
