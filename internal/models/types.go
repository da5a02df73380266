package models

import "time"

// Pinger issues a single bounded reachability probe. A non-nil error means
// the probe mechanism itself failed to execute; the result still carries
// Success=false in that case, so callers may log the error and treat the
// tick as a plain negative probe.
type Pinger interface {
	Ping(target string, timeout time.Duration) (PingResult, error)
}

// Notifier delivers one outage summary to a remote endpoint. Delivery is
// best effort: callers log a failure and move on, the outage is never
// re-reported.
type Notifier interface {
	Notify(outage Outage) error
}

// StatusReporter renders monitor events for a human. The monitor only emits
// discrete events; how they appear (line overwrites, colors, nothing at
// all) is up to the implementation.
type StatusReporter interface {
	StillUp(result PingResult)
	StillDown(now time.Time, elapsed time.Duration)
	UnreachableSince(now time.Time)
	ReachableAgain(now time.Time, outage Outage)
}
