package service

import (
	"context"

	"github.com/takumi-dev/go-user-management/internal/domain/entity"
)

// EmailService is the notification contract consumed by the registration
// use cases. Delivery is fire-and-forget from the core's perspective;
// failure policy belongs to the implementation.
type EmailService interface {
	SendConfirmationEmail(ctx context.Context, user *entity.User) error
}
