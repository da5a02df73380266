package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadWebhookURL reads the notification endpoint from a single-line
// credential file. A missing file or content that does not look like an
// HTTP URL is an error. An empty file is passed through as an empty URL;
// delivery will then fail at notify time, which the monitor logs and
// survives.
func LoadWebhookURL(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read webhook file %s: %w", path, err)
	}

	url := strings.TrimSpace(string(content))
	if url != "" && !strings.HasPrefix(url, "http") {
		return "", fmt.Errorf("invalid webhook URL in %s", path)
	}
	return url, nil
}
