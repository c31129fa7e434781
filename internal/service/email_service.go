package service

import (
	"context"
	"fmt"
	"log"

	"github.com/resend/resend-go/v2"

	"github.com/yourusername/formbuilder-api/internal/domain/entity"
)

// EmailNotifier отправляет email-уведомления о новых прохождениях.
type EmailNotifier interface {
	NotifyNewResponse(ctx context.Context, notification *entity.Notification) error
}

// NoopEmailNotifier используется, когда email-уведомления выключены.
type NoopEmailNotifier struct{}

func (n *NoopEmailNotifier) NotifyNewResponse(ctx context.Context, notification *entity.Notification) error {
	return nil
}

// ResendEmailNotifier отправляет уведомления через Resend REST API.
type ResendEmailNotifier struct {
	from   string
	to     string
	client *resend.Client
}

// NewResendEmailNotifier создает нотификатор поверх Resend
func NewResendEmailNotifier(apiKey, from, to string) (*ResendEmailNotifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" || to == "" {
		return nil, fmt.Errorf("email from and to addresses are required")
	}
	return &ResendEmailNotifier{
		from:   from,
		to:     to,
		client: resend.NewClient(apiKey),
	}, nil
}

// NotifyNewResponse отправляет письмо администратору о новом прохождении
func (n *ResendEmailNotifier) NotifyNewResponse(ctx context.Context, notification *entity.Notification) error {
	scoreLine := ""
	if notification.Score != nil && notification.MaxScore != nil {
		scoreLine = fmt.Sprintf(" Score: %d/%d.", *notification.Score, *notification.MaxScore)
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.to},
		Subject: fmt.Sprintf("New response: %s", notification.FormTitle),
		Text: fmt.Sprintf(
			"%s (%s) submitted a response to %q at %s.%s",
			notification.RespondentName,
			notification.RespondentEmail,
			notification.FormTitle,
			notification.SubmittedAt.Format("2006-01-02 15:04:05"),
			scoreLine,
		),
	}

	if _, err := n.client.Emails.SendWithOptions(ctx, params, &resend.SendEmailOptions{}); err != nil {
		return err
	}
	log.Printf("[EmailNotifier] Отправлено уведомление о прохождении формы %s", notification.FormID)
	return nil
}
