package middleware

import (
	"net/http"
	"strings"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"BE-Hotel-Booking/app/usecases"
)

const (
	contextKeyEmail = "auth.email"
	contextKeyRole  = "auth.role"
	contextKeyToken = "auth.token"
)

// JWTAuth verifies the bearer token, rejects revoked tokens and stores
// the caller's identity on the request context for handlers.
func JWTAuth(secret string, revoked usecases.RevocationStore) echo.MiddlewareFunc {
	secretBytes := []byte(secret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Unauthorized"})
			}
			rawToken := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &usecases.Claims{}
			token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid token"})
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(c.Request().Context(), rawToken)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
				}
				if isRevoked {
					return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Token has been revoked"})
				}
			}

			c.Set(contextKeyEmail, claims.Email)
			c.Set(contextKeyRole, claims.Role)
			c.Set(contextKeyToken, rawToken)
			return next(c)
		}
	}
}

// RequireRoles allows the request through only for the listed roles.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := RoleFromContext(c)
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, echo.Map{"error": "access forbidden"})
		}
	}
}

func EmailFromContext(c echo.Context) string {
	email, _ := c.Get(contextKeyEmail).(string)
	return email
}

func RoleFromContext(c echo.Context) string {
	role, _ := c.Get(contextKeyRole).(string)
	return role
}

func TokenFromContext(c echo.Context) string {
	token, _ := c.Get(contextKeyToken).(string)
	return token
}
