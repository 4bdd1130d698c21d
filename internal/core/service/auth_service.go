package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidUserType(input.UserType) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	registration := domain.RegistrationBuyer
	if domain.PartnerType(input.UserType) {
		registration = domain.RegistrationPartner
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:                newUserID(),
		Email:             input.Email,
		PasswordHash:      string(hash),
		UserType:          input.UserType,
		RegistrationType:  registration,
		BusinessName:      input.BusinessName,
		ContactPerson:     input.ContactPerson,
		Phone:             input.Phone,
		VerificationToken: newUserID(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email. Accounts must have a verified email, and
// partner accounts must additionally be admin approved before they can
// sign in.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return "", nil, domain.ErrEmailNotVerified
	}
	if user.RegistrationType == domain.RegistrationPartner && !user.AdminVerified {
		return "", nil, domain.ErrPendingApproval
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return "", nil, err
	}
	user.LastLogin = now

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// VerifyEmail marks the account verified when the presented token
// matches the stored one. A missing account and a stale token are
// indistinguishable to the caller.
func (s *AuthService) VerifyEmail(ctx context.Context, email, token string) error {
	if email == "" || token == "" {
		return domain.ErrInvalidVerification
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidVerification
		}
		return err
	}
	if user.VerificationToken == "" || user.VerificationToken != token {
		return domain.ErrInvalidVerification
	}

	return s.repo.MarkEmailVerified(ctx, email, time.Now().UTC())
}

// ResendVerification rotates the account's verification token. Delivery
// happens out of band; the token is never returned to the caller.
func (s *AuthService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.EmailVerified {
		return domain.ErrEmailAlreadyVerified
	}

	return s.repo.SetVerificationToken(ctx, email, newUserID())
}

// PendingPartners lists partner accounts awaiting admin approval.
func (s *AuthService) PendingPartners(ctx context.Context) ([]*domain.User, error) {
	return s.repo.PendingPartners(ctx)
}

// ApprovePartner records the admin's decision on a pending partner.
func (s *AuthService) ApprovePartner(ctx context.Context, partnerID, adminID string, approved bool) error {
	return s.repo.SetPartnerApproval(ctx, partnerID, adminID, approved, time.Now().UTC())
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_type": user.UserType,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func newUserID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	// RFC 4122 version 4 layout
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
