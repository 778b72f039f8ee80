package middleware

import (
	"net/http"

	"github.com/anonto42/photofeed/backend/internal/token"
	"github.com/labstack/echo/v4"
)

// HeaderAuthToken is the custom header carrying the raw credential token.
const HeaderAuthToken = "x-auth-token"

// userIDKey is the context key under which the authenticated user's ID is
// stored for downstream handlers.
const userIDKey = "userID"

// TokenAuthMiddleware verifies the x-auth-token header and stores the
// authenticated user's ID in the request context.
func TokenAuthMiddleware(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := c.Request().Header.Get(HeaderAuthToken)
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication token is required")
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authentication token")
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user's ID set by
// TokenAuthMiddleware, or "" when the request is unauthenticated.
func UserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(userIDKey).(string)
	return userID
}
