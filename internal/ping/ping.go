package ping

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"time"

	"network-canary/internal/models"
)

// graceMargin bounds the ping process beyond the reply timeout so a hung
// utility cannot stall the monitor loop.
const graceMargin = time.Second

// Pinger probes reachability with the OS ping utility.
type Pinger struct {
	args func(target string, timeout time.Duration) []string
}

// New creates a Pinger for the current platform.
func New() *Pinger {
	return &Pinger{args: platformArgs(runtime.GOOS)}
}

// platformArgs returns the argument builder for a single echo request on
// the given OS. Windows -w and macOS -W take the reply timeout in
// milliseconds; other unixes take -W in whole seconds.
func platformArgs(goos string) func(string, time.Duration) []string {
	switch goos {
	case "windows":
		return func(target string, timeout time.Duration) []string {
			return []string{"-n", "1", "-w", strconv.Itoa(int(timeout.Milliseconds())), target}
		}
	case "darwin":
		return func(target string, timeout time.Duration) []string {
			return []string{"-c", "1", "-W", strconv.Itoa(int(timeout.Milliseconds())), target}
		}
	default:
		return func(target string, timeout time.Duration) []string {
			secs := int(timeout.Seconds())
			if secs < 1 {
				secs = 1
			}
			return []string{"-c", "1", "-W", strconv.Itoa(secs), target}
		}
	}
}

// Ping executes one echo request against the target. A non-zero exit from
// the ping utility is a normal negative result (err == nil); the error is
// non-nil only when the probe mechanism itself failed, i.e. the binary
// could not run or the hard deadline expired.
func (p *Pinger) Ping(target string, timeout time.Duration) (models.PingResult, error) {
	result := models.PingResult{
		Timestamp: time.Now(),
		Target:    target,
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout+graceMargin)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ping", p.args(target, timeout)...)
	output, err := cmd.CombinedOutput()

	if err == nil {
		result.Success = true
		result.RTT = parsePingOutput(string(output))
		return result, nil
	}

	if ctx.Err() != nil {
		result.ErrorMessage = "ping timed out"
		return result, fmt.Errorf("ping %s: %w", target, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// No reply within the timeout, or the host did not resolve.
		result.ErrorMessage = exitErr.Error()
		return result, nil
	}

	result.ErrorMessage = err.Error()
	return result, fmt.Errorf("ping %s: %w", target, err)
}

// parsePingOutput parses RTT from ping output
func parsePingOutput(output string) float64 {
	// Parse RTT from ping output
	// Linux/Mac: "time=XX.X ms"
	// Windows: "time=XXms" or "time<1ms"

	var patterns = []string{
		`time[=<]([0-9.]+)\s*ms`,
		`time[=<]([0-9.]+)ms`,
		`round-trip min/avg/max = [0-9.]+/([0-9.]+)/`,
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(output)
		if len(matches) > 1 {
			if rtt, err := strconv.ParseFloat(matches[1], 64); err == nil {
				return rtt
			}
		}
	}

	return 0
}
