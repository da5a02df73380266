package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bwmarrin/discordgo"

	"network-canary/internal/format"
	"network-canary/internal/models"
)

const (
	// requestTimeout bounds the whole webhook POST.
	requestTimeout = 10 * time.Second

	// embedColor is the green Discord uses for success embeds.
	embedColor = 3066993

	// fieldTimeLayout is the local-time display format for the outage
	// start/end fields.
	fieldTimeLayout = "2006-01-02 15:04:05"
)

// Discord delivers outage summaries to a Discord-compatible webhook.
type Discord struct {
	url    string
	client *http.Client
}

// NewDiscord creates a notifier for the given webhook URL.
func NewDiscord(url string) *Discord {
	return &Discord{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Notify posts one outage summary. Success means the endpoint answered
// 204 No Content; any other status or transport error is returned to the
// caller, who does not retry.
func (d *Discord) Notify(outage models.Outage) error {
	body, err := json.Marshal(buildMessage(outage, time.Now()))
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	resp, err := d.client.Post(d.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// buildMessage assembles the webhook embed. now is the generation time
// stamped on the embed, distinct from the outage interval itself.
func buildMessage(outage models.Outage, now time.Time) *discordgo.WebhookParams {
	duration := format.Duration(outage.Duration())

	return &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "🌐 Network Restored",
			Description: fmt.Sprintf("Network connectivity has been restored after being down for **%s**.", duration),
			Color:       embedColor,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Downtime Started", Value: outage.Start.Format(fieldTimeLayout), Inline: true},
				{Name: "Network Restored", Value: outage.End.Format(fieldTimeLayout), Inline: true},
				{Name: "Total Downtime", Value: duration, Inline: false},
			},
			Timestamp: now.UTC().Format(time.RFC3339),
		}},
	}
}
