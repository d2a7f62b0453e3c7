// Package queue implements the EmailService contract by enqueueing jobs
// on RabbitMQ; cmd/email_worker consumes the queue and talks to Mailgun.
package queue

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/pkg/helpers"
	"github.com/takumi-dev/go-user-management/pkg/mailer"
)

// EmailService publishes confirmation emails to the email queue. A nil
// publisher disables delivery (local development without RabbitMQ).
type EmailService struct {
	pub    *helpers.RabbitPublisher
	logger *logrus.Logger
}

func NewEmailService(pub *helpers.RabbitPublisher, logger *logrus.Logger) *EmailService {
	return &EmailService{pub: pub, logger: logger}
}

func (s *EmailService) SendConfirmationEmail(ctx context.Context, user *entity.User) error {
	if s.pub == nil {
		return nil
	}
	job := mailer.EmailJob{
		To:       user.Email.String(),
		Template: mailer.TemplateConfirmation,
		Data: map[string]any{
			"Name":  user.Name,
			"Email": user.Email.String(),
			"Role":  user.Role.String(),
		},
	}
	if err := s.pub.PublishJSON(ctx, job); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("user_id", user.ID).Warn("enqueue confirmation email failed")
		}
		return err
	}
	return nil
}

var _ service.EmailService = (*EmailService)(nil)
