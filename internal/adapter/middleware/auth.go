package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"ashgrove-backend/internal/domain/user"
	"ashgrove-backend/internal/usecase/auth"
)

// ClaimsKey is where JWTAuth stores the verified claims on the echo
// context.
const ClaimsKey = "authClaims"

// TokenVerifier is what the middleware needs from the auth usecase.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*auth.Claims, error)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error":   "unauthorized",
		"message": "Invalid credentials",
	})
}

// JWTAuth rejects requests without a valid bearer token. The response
// shape is identical for missing, malformed and expired tokens.
func JWTAuth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return unauthorized(c)
			}
			claims, err := verifier.VerifyToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return unauthorized(c)
			}
			c.Set(ClaimsKey, claims)
			return next(c)
		}
	}
}

// RequirePermission gates a route on a single permission. Must run
// after JWTAuth.
func RequirePermission(p user.Permission) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(*auth.Claims)
			if !ok {
				return unauthorized(c)
			}
			if !user.Allows(claims.Roles, p) {
				return c.JSON(http.StatusForbidden, map[string]string{
					"error":   "forbidden",
					"message": "You do not have permission to perform this action",
				})
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the verified claims set by JWTAuth, or nil.
func ClaimsFromContext(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ClaimsKey).(*auth.Claims)
	return claims
}
