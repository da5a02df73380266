package ping

import (
	"os/exec"
	"reflect"
	"testing"
	"time"
)

func TestParsePingOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected float64
	}{
		{
			name:     "macOS individual response",
			output:   "64 bytes from 8.8.8.8: icmp_seq=0 ttl=118 time=44.347 ms",
			expected: 44.347,
		},
		{
			name:     "macOS summary line",
			output:   "round-trip min/avg/max/stddev = 44.347/44.347/44.347/0.000 ms",
			expected: 44.347,
		},
		{
			name:     "Linux individual response",
			output:   "64 bytes from 8.8.8.8: icmp_seq=0 ttl=118 time=12.3 ms",
			expected: 12.3,
		},
		{
			name:     "Windows response",
			output:   "Reply from 8.8.8.8: bytes=32 time=15ms TTL=118",
			expected: 15,
		},
		{
			name:     "Windows sub-millisecond",
			output:   "Reply from 8.8.8.8: bytes=32 time<1ms TTL=118",
			expected: 0, // Should not match, returns 0
		},
		{
			name:     "No match",
			output:   "ping: unknown host example.invalid",
			expected: 0,
		},
		{
			name:     "Empty output",
			output:   "",
			expected: 0,
		},
		{
			name: "Multiple lines with macOS output",
			output: `PING 8.8.8.8 (8.8.8.8): 56 data bytes
64 bytes from 8.8.8.8: icmp_seq=0 ttl=118 time=44.347 ms

--- 8.8.8.8 ping statistics ---
1 packets transmitted, 1 packets received, 0.0% packet loss
round-trip min/avg/max/stddev = 44.347/44.347/44.347/0.000 ms`,
			expected: 44.347,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parsePingOutput(tt.output)
			if result != tt.expected {
				t.Errorf("parsePingOutput(%q) = %v, want %v", tt.output, result, tt.expected)
			}
		})
	}
}

func TestPlatformArgs(t *testing.T) {
	tests := []struct {
		name     string
		goos     string
		timeout  time.Duration
		expected []string
	}{
		{
			name:     "windows milliseconds",
			goos:     "windows",
			timeout:  3 * time.Second,
			expected: []string{"-n", "1", "-w", "3000", "1.1.1.1"},
		},
		{
			name:     "darwin milliseconds",
			goos:     "darwin",
			timeout:  3 * time.Second,
			expected: []string{"-c", "1", "-W", "3000", "1.1.1.1"},
		},
		{
			name:     "linux whole seconds",
			goos:     "linux",
			timeout:  3 * time.Second,
			expected: []string{"-c", "1", "-W", "3", "1.1.1.1"},
		},
		{
			name:     "linux sub-second floors to one",
			goos:     "linux",
			timeout:  500 * time.Millisecond,
			expected: []string{"-c", "1", "-W", "1", "1.1.1.1"},
		},
		{
			name:     "unknown unix uses seconds",
			goos:     "freebsd",
			timeout:  2 * time.Second,
			expected: []string{"-c", "1", "-W", "2", "1.1.1.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := platformArgs(tt.goos)("1.1.1.1", tt.timeout)
			if !reflect.DeepEqual(args, tt.expected) {
				t.Errorf("platformArgs(%q) = %v, want %v", tt.goos, args, tt.expected)
			}
		})
	}
}

func TestPingerPing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping ping integration test in short mode")
	}

	if _, err := exec.LookPath("ping"); err != nil {
		t.Skip("ping binary not available on PATH")
	}

	pinger := New()

	result, err := pinger.Ping("127.0.0.1", 5*time.Second)
	if err != nil {
		t.Skipf("skipping due to unexpected ping failure: %v", err)
	}

	t.Logf("Ping result: Success=%v, RTT=%v, Error=%s", result.Success, result.RTT, result.ErrorMessage)

	if !result.Success {
		t.Fatalf("Expected ping to localhost to succeed, got error: %s", result.ErrorMessage)
	}

	if result.Target != "127.0.0.1" {
		t.Errorf("Expected target to be '127.0.0.1', got %v", result.Target)
	}

	// An unresolvable host is a normal negative result, not a mechanism
	// failure: the utility ran and reported no reply.
	result, err = pinger.Ping("invalid.host.that.does.not.exist", 2*time.Second)
	if err != nil {
		t.Fatalf("Expected no mechanism error for unresolvable host, got %v", err)
	}
	if result.Success {
		t.Errorf("Expected ping to unresolvable host to fail, but it succeeded")
	}
	if result.ErrorMessage == "" {
		t.Errorf("Expected a diagnostic error message for failed ping")
	}
}
