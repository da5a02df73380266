package status

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"network-canary/internal/format"
	"network-canary/internal/models"
)

const clockLayout = "15:04:05"

// Console renders monitor events as human-readable lines. Steady-state
// lines are overwritten in place with a carriage return; transitions get
// their own lines.
type Console struct {
	w io.Writer
}

// NewConsole writes to stdout.
func NewConsole() *Console {
	return &Console{w: os.Stdout}
}

// NewConsoleWriter writes to an arbitrary stream. Used by tests.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{w: w}
}

// Banner prints the startup summary before the first probe.
func (c *Console) Banner(target string, interval time.Duration) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, " 🕊️  Network Canary starting...")
	fmt.Fprintln(c.w)
	fmt.Fprintf(c.w, " ++ Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(c.w, " ++ Monitoring connectivity to %s\n", target)
	fmt.Fprintf(c.w, " ++ Ping interval: %v\n", interval)
	fmt.Fprintf(c.w, " ++ Discord webhook configured\n")
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, strings.Repeat("-", 40))
}

func (c *Console) StillUp(result models.PingResult) {
	if result.RTT > 0 {
		fmt.Fprintf(c.w, "\r ++ %s - Network OK (%.1f ms)", result.Timestamp.Format(clockLayout), result.RTT)
		return
	}
	fmt.Fprintf(c.w, "\r ++ %s - Network OK", result.Timestamp.Format(clockLayout))
}

func (c *Console) StillDown(now time.Time, elapsed time.Duration) {
	fmt.Fprintf(c.w, "\r ++ Network down for: %s", format.Duration(elapsed))
}

func (c *Console) UnreachableSince(now time.Time) {
	fmt.Fprintf(c.w, "\n ++ Network down detected at %s\n", now.Format(clockLayout))
}

func (c *Console) ReachableAgain(now time.Time, outage models.Outage) {
	fmt.Fprintf(c.w, "\n ++ Network restored at %s\n", now.Format(clockLayout))
	fmt.Fprintf(c.w, " ++ Downtime duration: %s\n", format.Duration(outage.Duration()))
	fmt.Fprintln(c.w, strings.Repeat("-", 40))
}
