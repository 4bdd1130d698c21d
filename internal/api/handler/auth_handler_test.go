package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	verifyFn   func(ctx context.Context, email, token string) error
	resendFn   func(ctx context.Context, email string) error
	pendingFn  func(ctx context.Context) ([]*domain.User, error)
	approveFn  func(ctx context.Context, partnerID, adminID string, approved bool) error
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) VerifyEmail(ctx context.Context, email, token string) error {
	return s.verifyFn(ctx, email, token)
}

func (s *stubAuthService) ResendVerification(ctx context.Context, email string) error {
	return s.resendFn(ctx, email)
}

func (s *stubAuthService) PendingPartners(ctx context.Context) ([]*domain.User, error) {
	return s.pendingFn(ctx)
}

func (s *stubAuthService) ApprovePartner(ctx context.Context, partnerID, adminID string, approved bool) error {
	return s.approveFn(ctx, partnerID, adminID, approved)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Email != "alice@example.com" || input.UserType != "end_customer" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: "u-1", Email: input.Email, UserType: input.UserType}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"alice@example.com","password":"pass12345","user_type":"end_customer"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["id"] != "u-1" || user["user_type"] != "end_customer" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"not-an-email","password":"short","user_type":"end_customer"}`)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register",
		`{"email":"bob@example.com","password":"pass12345","user_type":"seller"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "admin@example.com" || password != "adminpass" {
				t.Fatalf("unexpected credentials: %s %s", email, password)
			}
			return "signed-token", &domain.User{ID: "u-9", Email: email, UserType: domain.TypeAdmin}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"adminpass"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "signed-token" {
		t.Fatalf("expected access_token in response, got %v", resp)
	}
	if resp["token_type"] != "bearer" {
		t.Fatalf("expected bearer token_type, got %v", resp["token_type"])
	}
}

func TestAuthHandler_VerifyEmail_Success(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, email, token string) error {
			if email != "frank@example.com" || token != "tok-1" {
				t.Fatalf("unexpected input: %s %s", email, token)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/verify-email",
		`{"email":"frank@example.com","token":"tok-1"}`)

	if err := h.VerifyEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "email verified successfully" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestAuthHandler_VerifyEmail_InvalidToken(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(_ context.Context, _, _ string) error {
			return domain.ErrInvalidVerification
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/verify-email",
		`{"email":"frank@example.com","token":"stale"}`)

	if err := h.VerifyEmail(c); !errors.Is(err, domain.ErrInvalidVerification) {
		t.Fatalf("expected ErrInvalidVerification to propagate, got %v", err)
	}
}

func TestAuthHandler_VerifyEmail_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/verify-email",
		`{"email":"frank@example.com"}`)

	err := h.VerifyEmail(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError for missing token, got %v", err)
	}
}

func TestAuthHandler_ResendVerification(t *testing.T) {
	var resent string
	stub := &stubAuthService{
		resendFn: func(_ context.Context, email string) error {
			resent = email
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/resend-verification",
		`{"email":"henry@example.com"}`)

	if err := h.ResendVerification(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resent != "henry@example.com" {
		t.Fatalf("expected service called with the email, got %q", resent)
	}
}

func TestAuthHandler_ResendVerification_AlreadyVerified(t *testing.T) {
	stub := &stubAuthService{
		resendFn: func(_ context.Context, _ string) error {
			return domain.ErrEmailAlreadyVerified
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/resend-verification",
		`{"email":"iris@example.com"}`)

	if err := h.ResendVerification(c); !errors.Is(err, domain.ErrEmailAlreadyVerified) {
		t.Fatalf("expected ErrEmailAlreadyVerified to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login",
		`{"email":"admin@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}
