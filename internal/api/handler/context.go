package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// requesterIdentity extracts the auth claims injected by the Auth middleware
// and fast-fails before any service call: both id and role must be present,
// their presence proves the middleware ran.
func requesterIdentity(c echo.Context) (userID, role string, err error) {
	userID, _ = c.Get("user_id").(string)
	role, _ = c.Get("role").(string)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
