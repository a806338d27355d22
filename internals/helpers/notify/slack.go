package notify

import (
	"context"
	"log"
	"strings"

	"github.com/slack-go/slack"
)

// Notifier delivers short operational messages. A nil or empty notifier is a
// no-op so callers never need to check configuration.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

type SlackWebhook struct {
	URL     string
	Channel string
}

func NewSlackWebhook(url, channel string) *SlackWebhook {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return &SlackWebhook{URL: url, Channel: strings.TrimSpace(channel)}
}

func (s *SlackWebhook) Notify(ctx context.Context, text string) error {
	if s == nil || s.URL == "" {
		return nil
	}
	msg := &slack.WebhookMessage{Text: text, Channel: s.Channel}
	if err := slack.PostWebhookContext(ctx, s.URL, msg); err != nil {
		log.Printf("[WARN] slack webhook failed: %v", err)
		return err
	}
	return nil
}

// Nop discards messages.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }
