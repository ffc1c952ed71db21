package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ErrUnreachable means the channel has no address for the recipient or is
// switched off.
var ErrUnreachable = errors.New("recipient unreachable on this channel")

// Multi delivers through every channel. It succeeds when at least one
// channel delivered the message.
type Multi struct {
	channels []ports.Notifier
	logger   logger.Logger
}

func NewMulti(logger logger.Logger, channels ...ports.Notifier) *Multi {
	return &Multi{channels: channels, logger: logger}
}

func (m *Multi) Send(ctx context.Context, to domain.Recipient, subject, body string) error {
	if len(m.channels) == 0 {
		return ErrUnreachable
	}

	var (
		delivered int
		errs      []error
	)
	for _, ch := range m.channels {
		err := ch.Send(ctx, to, subject, body)
		if err == nil {
			delivered++
			continue
		}
		if !errors.Is(err, ErrUnreachable) {
			m.logger.Warn("notification channel failed",
				logger.String("channel", fmt.Sprintf("%T", ch)),
				logger.String("error", err.Error()),
			)
		}
		errs = append(errs, err)
	}

	if delivered > 0 {
		return nil
	}
	return errors.Join(errs...)
}

// LogNotifier writes messages to the log. Used in development and as a
// last-resort channel.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(logger logger.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Send(ctx context.Context, to domain.Recipient, subject, body string) error {
	n.logger.LogAttrs(ctx, logger.InfoLevel, "notification",
		logger.String("to", to.Email),
		logger.String("subject", subject),
		logger.String("body", body),
	)
	return nil
}
