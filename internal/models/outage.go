package models

import "time"

// State is the current reachability of the monitored target.
type State int

const (
	StateUp State = iota
	StateDown
)

func (s State) String() string {
	if s == StateDown {
		return "down"
	}
	return "up"
}

// Outage is one maximal interval of consecutive failed probes. It is built
// at the moment connectivity returns, handed to the notifier, and discarded.
type Outage struct {
	Start time.Time
	End   time.Time
}

// Duration returns the outage length, never negative.
func (o Outage) Duration() time.Duration {
	d := o.End.Sub(o.Start)
	if d < 0 {
		return 0
	}
	return d
}
