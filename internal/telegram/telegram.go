package telegram

import (
	"context"
	"fmt"
	"strings"

	"studio-site/internal/domain"
	"studio-site/internal/domain/dto"

	"github.com/go-telegram/bot"
)

// Telegram forwards lead alerts to a single chat
type Telegram struct {
	bot    *bot.Bot
	chatID string
}

var _ domain.Notifier = (*Telegram)(nil)

// NewTelegram creates the bot client without contacting the API.
// Extra options (e.g. bot.WithServerURL) are appended after the defaults.
func NewTelegram(token, chatID string, opts ...bot.Option) (*Telegram, error) {
	if chatID == "" {
		return nil, fmt.Errorf("telegram chat id is required")
	}

	options := append([]bot.Option{
		bot.WithSkipGetMe(),
	}, opts...)

	b, err := bot.New(token, options...)
	if err != nil {
		return nil, err
	}

	return &Telegram{
		bot:    b,
		chatID: chatID,
	}, nil
}

func (t *Telegram) Name() string {
	return "telegram"
}

// Notify sends the alert as a plain text message
func (t *Telegram) Notify(ctx context.Context, alert *dto.LeadAlert) error {
	_, err := t.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: t.chatID,
		Text:   FormatAlert(alert),
	})
	if err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}

// FormatAlert flattens an alert into chat text, dropping markdown emphasis
func FormatAlert(alert *dto.LeadAlert) string {
	var b strings.Builder
	b.WriteString(strings.ReplaceAll(alert.Content, "**", ""))

	for _, embed := range alert.Embeds {
		b.WriteString("\n\n")
		b.WriteString(embed.Title)
		for _, field := range embed.Fields {
			fmt.Fprintf(&b, "\n• %s: %s", field.Name, field.Value)
		}
	}

	return strings.TrimSpace(b.String())
}
