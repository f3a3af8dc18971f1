package auth

import (
	"athlete-service/internal/domain/user"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// TokenPrincipal is the actor resolved from a bearer token. It is kept
// deliberately separate from APIKeyPrincipal: the two authorization
// tracks never merge into a single identity model.
type TokenPrincipal struct {
	UserID   int64
	Username string
	Email    string
	Role     user.Role
}

func (p TokenPrincipal) IsAdmin() bool {
	return p.Role == user.RoleAdmin
}

// APIKeyPrincipal is the actor resolved from an API key lookup. It
// carries the key's owning user id, not a full identity.
type APIKeyPrincipal struct {
	KeyID  int64
	UserID int64
}

func GetTokenPrincipal(c echo.Context) (TokenPrincipal, error) {
	raw := c.Get(ContextKeyPrincipal)
	if raw == nil {
		return TokenPrincipal{}, apperrors.Unauthorized(msgNotAuthenticated)
	}

	p, ok := raw.(TokenPrincipal)
	if !ok {
		return TokenPrincipal{}, apperrors.InternalServer(msgAuthorizationCheckFail, nil)
	}

	return p, nil
}

func GetAPIKeyPrincipal(c echo.Context) (APIKeyPrincipal, error) {
	raw := c.Get(ContextKeyKeyPrincipal)
	if raw == nil {
		return APIKeyPrincipal{}, apperrors.Unauthorized(msgNotAuthenticated)
	}

	p, ok := raw.(APIKeyPrincipal)
	if !ok {
		return APIKeyPrincipal{}, apperrors.InternalServer(msgAuthorizationCheckFail, nil)
	}

	return p, nil
}
