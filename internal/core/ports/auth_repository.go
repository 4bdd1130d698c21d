package ports

import (
	"context"
	"time"

	"github.com/marketplacepro/platform/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
	MarkEmailVerified(ctx context.Context, email string, at time.Time) error
	SetVerificationToken(ctx context.Context, email, token string) error
	PendingPartners(ctx context.Context) ([]*domain.User, error)
	SetPartnerApproval(ctx context.Context, partnerID, adminID string, approved bool, at time.Time) error
}
