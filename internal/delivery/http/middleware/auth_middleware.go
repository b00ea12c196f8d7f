package middleware

import (
	"net/http"
	"strings"

	"rater/internal/domain/entity"
	"rater/internal/domain/service"
	"rater/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// keyCaller is the echo context key under which the resolved caller is stored.
const keyCaller = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// CallerFromContext returns the caller resolved by Authenticate. The second
// return is false on routes where no authenticated caller is present.
func CallerFromContext(c echo.Context) (usecase.Caller, bool) {
	caller, ok := c.Get(keyCaller).(usecase.Caller)

	return caller, ok
}

// Authenticate validates the Bearer access token and stores the resolved
// caller on the context. Handlers never read the token themselves.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := m.resolveCaller(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(keyCaller, caller)

		return next(c)
	}
}

// OptionalAuthenticate resolves the caller when a valid token is presented
// and continues anonymously otherwise. Used on public routes whose response
// is enriched for authenticated callers.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") != "" {
			if caller, err := m.resolveCaller(c); err == nil {
				c.Set(keyCaller, caller)
			}
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: caller information missing"})
			}

			if caller.Role != requiredRole {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + string(requiredRole) + "' role"})
			}

			return next(c)
		}
	}
}

// resolveCaller extracts and validates the Bearer token, returning the
// identity and role it asserts.
func (m *AuthMiddleware) resolveCaller(c echo.Context) (usecase.Caller, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return usecase.Caller{}, errMissingAuthHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return usecase.Caller{}, errNotBearerToken
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return usecase.Caller{}, errInvalidToken
	}

	// Refresh tokens only ever reach the refresh endpoint body.
	if claims.Type != "access" {
		return usecase.Caller{}, errInvalidToken
	}

	return usecase.Caller{UserID: claims.UserID, Role: claims.Role}, nil
}

// Sentinel errors surfaced verbatim in the 401 body.
var (
	errMissingAuthHeader = errors.New("Authorization header is missing")
	errNotBearerToken    = errors.New("Invalid token format, must be Bearer token")
	errInvalidToken      = errors.New("Invalid or expired token")
)
