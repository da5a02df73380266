package format

import (
	"fmt"
	"strings"
	"time"
)

// Duration renders an elapsed time span as "1 hour, 2 minutes, 3 seconds".
// Zero-valued units are omitted, except seconds, which are kept whenever no
// larger unit was emitted. The result is never empty; the floor is
// "0 seconds". Negative inputs clamp to zero.
func Duration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())

	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, unit(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, unit(minutes, "minute"))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, unit(seconds, "second"))
	}

	return strings.Join(parts, ", ")
}

func unit(n int, name string) string {
	if n == 1 {
		return "1 " + name
	}
	return fmt.Sprintf("%d %ss", n, name)
}
