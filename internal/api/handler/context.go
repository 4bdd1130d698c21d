package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a non-empty user_type proves the
// middleware ran, and admin operations additionally need the user id for
// audit logging.
func ctxIdentity(c echo.Context) (userID, userType string, err error) {
	userType, _ = c.Get("user_type").(string)
	if userType == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	return userID, userType, nil
}
