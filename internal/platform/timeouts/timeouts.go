// Package timeouts defines timeout constants shared by command entry points.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to
// flush on exit.
const TelemetryShutdown = 5 * time.Second

// Export caps a single catalog export transaction.
const Export = 10 * time.Second
