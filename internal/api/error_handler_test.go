package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/marketplacepro/platform/internal/core/domain"
)

func renderError(t *testing.T, err error, method, path string) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("invalid error envelope: %v", err)
	}
	return rec.Code, envelope.Error
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"email not verified", domain.ErrEmailNotVerified, http.StatusUnauthorized, "please verify your email first"},
		{"pending approval", domain.ErrPendingApproval, http.StatusUnauthorized, "account pending admin approval"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"invalid verification", domain.ErrInvalidVerification, http.StatusBadRequest, "invalid verification token"},
		{"already verified", domain.ErrEmailAlreadyVerified, http.StatusBadRequest, "email already verified"},
		{"unknown category", domain.ErrUnknownSettingsCategory, http.StatusNotFound, "unknown settings category"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := renderError(t, tc.err, http.MethodGet, "/api/admin/settings/system")
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestErrorHandler_LoginHidesMissingUser(t *testing.T) {
	code, msg := renderError(t, domain.ErrUserNotFound, http.MethodPost, "/api/auth/login")
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401 on login for a missing user, got %d", code)
	}
	if msg != "invalid credentials" {
		t.Fatalf("expected account existence to be hidden, got %q", msg)
	}
}

func TestErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := renderError(t, errors.New("mongo: socket torn down"), http.MethodGet, "/api/admin/settings/system")
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "internal server error" {
		t.Fatalf("internal details must not leak, got %q", msg)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := renderError(t, echo.NewHTTPError(http.StatusUnprocessableEntity, "tax_rate must be one of: 0-100"), http.MethodPut, "/api/admin/settings/system")
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if msg != "tax_rate must be one of: 0-100" {
		t.Fatalf("expected message passthrough, got %q", msg)
	}
}
