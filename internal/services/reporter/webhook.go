package reporter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// WebhookConfig holds configuration for the Discord webhook poster
type WebhookConfig struct {
	// URL is the webhook URL, https://discord.com/api/webhooks/<id>/<token>
	URL string
}

// WebhookPoster posts reports through a Discord webhook
type WebhookPoster struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewWebhookPoster creates a poster for a Discord webhook URL
func NewWebhookPoster(cfg *WebhookConfig) (*WebhookPoster, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	webhookID, token, err := parseWebhookURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	// Webhook execution is authorized by the token in the URL
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &WebhookPoster{
		session:   session,
		webhookID: webhookID,
		token:     token,
	}, nil
}

// Post executes the webhook with content as the message body
func (p *WebhookPoster) Post(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := p.session.WebhookExecute(p.webhookID, p.token, false, &discordgo.WebhookParams{
		Content: content,
	}); err != nil {
		return fmt.Errorf("failed to execute webhook: %w", err)
	}
	return nil
}

// parseWebhookURL extracts the webhook ID and token from a webhook URL
func parseWebhookURL(raw string) (string, string, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", "", ErrInvalidWebhook
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, part := range parts {
		if part == "webhooks" && i+2 < len(parts) {
			id, token := parts[i+1], parts[i+2]
			if id == "" || token == "" {
				return "", "", ErrInvalidWebhook
			}
			return id, token, nil
		}
	}

	return "", "", ErrInvalidWebhook
}
