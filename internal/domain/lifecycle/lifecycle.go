// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as server shutdown and bucket close.
const DefaultTimeout = 10 * time.Second
