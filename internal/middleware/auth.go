package middleware

import (
	"net/http"
	"strings"

	"storefront-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// MemberTokenKey is the echo context key the session middleware sets.
const MemberTokenKey = "member_token"

// Session verifies the storefront JWT and exposes the platform member
// token to downstream handlers.
func Session(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			memberToken, err := authService.MemberToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set(MemberTokenKey, memberToken)
			return next(c)
		}
	}
}
