package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

// NewTelegramNotifier returns a disabled notifier when token is empty. An
// empty endpoint means the public Bot API.
func NewTelegramNotifier(token, endpoint string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, telegram notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) Send(ctx context.Context, to domain.Recipient, subject, body string) error {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("subject", subject))
		return ErrUnreachable
	}

	if to.TelegramChatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("subject", subject))
		return ErrUnreachable
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(*to.TelegramChatID, fmt.Sprintf("*%s*\n\n%s", subject, body))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram message to %d: %w", *to.TelegramChatID, err)
	}
	return nil
}
