package domain

import (
	"errors"
	"time"
)

// User types mirror the marketplace account taxonomy. Buyers register as
// end customers; partners register as sellers or service providers and
// require admin approval before they can log in.
const (
	TypeAdmin           = "admin"
	TypeEndCustomer     = "end_customer"
	TypeReseller        = "reseller"
	TypeWholesaler      = "wholesaler"
	TypeSeller          = "seller"
	TypeServiceProvider = "service_provider"
)

// Registration types distinguish the two onboarding flows.
const (
	RegistrationBuyer   = "buyer"
	RegistrationPartner = "partner"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrPendingApproval      = errors.New("account pending admin approval")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidVerification  = errors.New("invalid verification token")
	ErrEmailAlreadyVerified = errors.New("email already verified")
)

// ValidUserType reports whether t is a registrable account type.
// Admin accounts are provisioned out of band, never via registration.
func ValidUserType(t string) bool {
	switch t {
	case TypeEndCustomer, TypeReseller, TypeWholesaler, TypeSeller, TypeServiceProvider:
		return true
	}
	return false
}

// PartnerType reports whether t is a partner account type, i.e. one that
// needs admin verification before login.
func PartnerType(t string) bool {
	return t == TypeSeller || t == TypeServiceProvider
}

// User models a marketplace account. The verification token is an
// opaque secret delivered out of band and never serialized to clients.
type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	UserType          string    `json:"user_type"`
	RegistrationType  string    `json:"registration_type,omitempty"`
	BusinessName      string    `json:"business_name,omitempty"`
	ContactPerson     string    `json:"contact_person,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	EmailVerified     bool      `json:"email_verified"`
	VerificationToken string    `json:"-"`
	AdminVerified     bool      `json:"admin_verified"`
	AdminVerifiedBy   string    `json:"admin_verified_by,omitempty"`
	AdminVerifiedAt   time.Time `json:"admin_verified_at,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	LastLogin         time.Time `json:"last_login,omitempty"`
}
