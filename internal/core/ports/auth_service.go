package ports

import (
	"context"

	"github.com/marketplacepro/platform/internal/core/domain"
)

// RegisterInput carries the fields accepted by the registration flows.
type RegisterInput struct {
	Email         string
	Password      string
	UserType      string
	BusinessName  string
	ContactPerson string
	Phone         string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	VerifyEmail(ctx context.Context, email, token string) error
	ResendVerification(ctx context.Context, email string) error
	PendingPartners(ctx context.Context) ([]*domain.User, error)
	ApprovePartner(ctx context.Context, partnerID, adminID string, approved bool) error
}
