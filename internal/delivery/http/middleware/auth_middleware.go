package middleware

import (
	"strings"

	deliverycontext "corral/internal/delivery/context"
	"corral/internal/domain/entity"
	domainerrors "corral/internal/domain/errors"
	"corral/internal/domain/repository"
	"corral/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authorizes requests by their bearer token. A token is
// accepted only if the signature and expiry verify AND its registry row
// still exists; revocation is row deletion, so an otherwise valid token
// dies the moment it is logged out.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	tokenRepo repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, tokenRepo: tokenRepo}
}

// Authenticate validates the bearer token and attaches the authenticated
// principal to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.Unauthorized("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.Unauthorized("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.Unauthorized("Invalid or expired token")
		}

		// Signature alone is not enough; the registry row is what keeps
		// the token alive.
		ctx := c.Request().Context()
		if _, err := m.tokenRepo.FindByToken(ctx, tokenString); err != nil {
			return domainerrors.Unauthorized("Invalid or expired token")
		}

		principal := &entity.Principal{
			UserID:   claims.UserID,
			DeviceID: claims.DeviceID,
			Groups:   claims.Groups,
			RawToken: tokenString,
		}

		c.SetRequest(c.Request().WithContext(deliverycontext.WithPrincipal(ctx, principal)))

		return next(c)
	}
}
