package notification

import (
	"context"
	"fmt"

	"github.com/jomin07/HavenHues-sub000/internal/domain"
	"github.com/mailjet/mailjet-apiv3-go"
	"github.com/wb-go/wbf/logger"
)

type MailjetConfig struct {
	PublicKey  string
	PrivateKey string
	FromEmail  string
	FromName   string
	// BaseURL overrides the API endpoint. It must end in the version path
	// ("https://api.mailjet.com/v3"); the client appends ".1/send" to it.
	// Empty means the default.
	BaseURL string
}

type MailjetNotifier struct {
	client *mailjet.Client
	from   mailjet.RecipientV31
	logger logger.Logger
}

func NewMailjetNotifier(cfg MailjetConfig, logger logger.Logger) *MailjetNotifier {
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		logger.Warn("mailjet keys are empty, email notifications disabled")
		return &MailjetNotifier{logger: logger}
	}

	var client *mailjet.Client
	if cfg.BaseURL != "" {
		client = mailjet.NewMailjetClient(cfg.PublicKey, cfg.PrivateKey, cfg.BaseURL)
	} else {
		client = mailjet.NewMailjetClient(cfg.PublicKey, cfg.PrivateKey)
	}

	return &MailjetNotifier{
		client: client,
		from:   mailjet.RecipientV31{Email: cfg.FromEmail, Name: cfg.FromName},
		logger: logger,
	}
}

func (n *MailjetNotifier) Send(ctx context.Context, to domain.Recipient, subject, body string) error {
	if n.client == nil {
		n.logger.Debug("notification skipped (mailjet disabled)", logger.String("subject", subject))
		return ErrUnreachable
	}
	if to.Email == "" {
		return ErrUnreachable
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := n.from
	messages := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From:     &from,
		To:       &mailjet.RecipientsV31{{Email: to.Email, Name: to.Name}},
		Subject:  subject,
		TextPart: body,
	}}}

	if _, err := n.client.SendMailV31(&messages); err != nil {
		return fmt.Errorf("send email to %s: %w", to.Email, err)
	}
	return nil
}
