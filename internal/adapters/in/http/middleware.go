package http

import (
	"net/http"
	"regexp"
	"strings"

	"driverroutes/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// publicPaths lists the customer-facing order endpoints served without a
// session token.
var publicPaths = []*regexp.Regexp{
	regexp.MustCompile(`/api/customers/.*/order-form`),
	regexp.MustCompile(`/api/customers/.*/order-exists`),
	regexp.MustCompile(`/api/customers/.*/order-confirmation`),
	regexp.MustCompile(`^/health$`),
}

func isPublicPath(path string) bool {
	for _, pattern := range publicPaths {
		if pattern.MatchString(path) {
			return true
		}
	}
	return false
}

// AuthMiddleware extracts the bearer credential from the request and stores
// it in the request context so outbound backend calls can forward it.
// Requests to non-public paths without a credential are rejected.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))

			if token == "" && !isPublicPath(c.Request().URL.Path) {
				return c.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Authentication required",
				})
			}

			if token != "" {
				ctx := ports.WithBearerToken(c.Request().Context(), token)
				c.SetRequest(c.Request().WithContext(ctx))
			}

			return next(c)
		}
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
