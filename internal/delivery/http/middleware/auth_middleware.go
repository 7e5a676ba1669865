package middleware

import (
	"strings"

	domainerrors "soapbox/internal/domain/errors"
	"soapbox/internal/domain/repository"
	"soapbox/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserID is the echo.Context key under which the authenticated
// caller's id is stored for handlers.
const ContextKeyUserID = "userID"

// AuthMiddleware validates the bearer token on protected routes and resolves
// it to an existing user.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate rejects the request unless it carries a valid bearer token for
// a user that still exists. Every failure mode gets the same 401 so callers
// cannot distinguish a bad token from a deleted account.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return domainerrors.ErrUnauthenticated
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthenticated
		}

		// The token may outlive its account; a valid signature alone is not
		// proof the caller still exists.
		if _, err := m.userRepo.FindByID(c.Request().Context(), userID); err != nil {
			return domainerrors.ErrUnauthenticated
		}

		c.Set(ContextKeyUserID, userID)

		return next(c)
	}
}
