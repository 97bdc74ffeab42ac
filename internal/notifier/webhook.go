package notifier

import (
	"context"
	"fmt"
	"time"

	"studio-site/internal/domain"
	"studio-site/internal/domain/dto"

	"github.com/go-resty/resty/v2"
)

// Webhook posts lead alerts as JSON to an incoming-webhook URL
type Webhook struct {
	url    string
	client *resty.Client
}

var _ domain.Notifier = (*Webhook)(nil)

// NewWebhook creates a webhook notifier; requests time out after timeout
func NewWebhook(url string, timeout time.Duration) *Webhook {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("User-Agent", "studio-site/1.0")

	return &Webhook{url: url, client: client}
}

func (w *Webhook) Name() string {
	return "webhook"
}

// Notify sends the alert once; any non-2xx answer is an error
func (w *Webhook) Notify(ctx context.Context, alert *dto.LeadAlert) error {
	resp, err := w.client.R().
		SetContext(ctx).
		SetBody(alert).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("webhook responded %s", resp.Status())
	}

	return nil
}
