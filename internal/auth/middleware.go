package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"athlete-service/internal/domain/user"
	"athlete-service/internal/repository"
	apperrors "athlete-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// Middleware holds the request gates. Gates short-circuit: the first
// deny produces the error response, reaching the handler is allow.
// Ordering matters — RequireRole, RequireOwnerOrAdmin and
// RequirePartition all read the principal bound by RequireToken.
type Middleware struct {
	jwtService *JWTService
	apiKeyRepo repository.APIKeyRepository
}

func NewMiddleware(jwtService *JWTService, apiKeyRepo repository.APIKeyRepository) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		apiKeyRepo: apiKeyRepo,
	}
}

// RequireToken rejects requests without a valid bearer token and binds
// the decoded claims as the request's TokenPrincipal. A missing or
// malformed header is 401; an expired or tampered token is 403 so the
// client can tell "re-login" apart from "attach credentials".
func (m *Middleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(headerAuthorization)
			if authHeader == "" {
				return respondMessage(c, http.StatusUnauthorized, msgMissingAuthorization)
			}

			parts := strings.Fields(authHeader)
			if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
				return respondMessage(c, http.StatusUnauthorized, msgMalformedAuthorization)
			}

			claims, err := m.jwtService.Verify(parts[1])
			if err != nil {
				if errors.Is(err, apperrors.ErrTokenExpired) {
					return respondMessage(c, http.StatusForbidden, msgTokenExpired)
				}
				return respondMessage(c, http.StatusForbidden, msgTokenInvalid)
			}

			c.Set(ContextKeyPrincipal, TokenPrincipal{
				UserID:   claims.UserID,
				Username: claims.Username,
				Email:    claims.Email,
				Role:     claims.Role,
			})

			return next(c)
		}
	}
}

// RequireRole denies with 403 unless the bound principal carries
// exactly the required role.
func (m *Middleware) RequireRole(required user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := GetTokenPrincipal(c)
			if err != nil {
				return respondMessage(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			if p.Role != required {
				return respondMessage(c, http.StatusForbidden, fmt.Sprintf(msgRoleRequiredFmt, required))
			}

			return next(c)
		}
	}
}

// RequireOwnerOrAdmin restricts a resource to its owner. Admins pass
// unconditionally; everyone else must match the numeric path parameter.
func (m *Middleware) RequireOwnerOrAdmin(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := GetTokenPrincipal(c)
			if err != nil {
				return respondMessage(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			if p.IsAdmin() {
				return next(c)
			}

			resourceID, err := strconv.ParseInt(c.Param(param), 10, 64)
			if err != nil {
				return respondMessage(c, http.StatusBadRequest, msgInvalidResourceID)
			}

			if p.UserID != resourceID {
				return respondMessage(c, http.StatusForbidden, msgOwnershipDenied)
			}

			return next(c)
		}
	}
}

// RequirePartition applies a resource-partitioning policy to the
// numeric id path parameter.
func (m *Middleware) RequirePartition(policy PartitionPolicy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := GetTokenPrincipal(c)
			if err != nil {
				return respondMessage(c, http.StatusUnauthorized, msgNotAuthenticated)
			}

			resourceID, err := strconv.ParseInt(c.Param(paramID), 10, 64)
			if err != nil {
				return respondMessage(c, http.StatusBadRequest, msgInvalidResourceID)
			}

			if !policy(p, resourceID) {
				return respondMessage(c, http.StatusForbidden, msgPartitionDenied)
			}

			return next(c)
		}
	}
}

// RequireAPIKey gates the anonymous track. The key is read from the
// x-api-key header first, then the api_key query parameter. The key's
// owning user id is bound as an APIKeyPrincipal, distinct from any
// bearer-token identity.
func (m *Middleware) RequireAPIKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := extractAPIKey(c)
			if key == "" {
				return respondMessage(c, http.StatusUnauthorized, msgMissingAPIKey)
			}

			record, err := m.apiKeyRepo.GetActiveByKey(c.Request().Context(), key)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return respondMessage(c, http.StatusForbidden, msgInvalidAPIKey)
				}
				// A store outage must not masquerade as an authorization denial.
				c.Logger().Errorf("api key lookup failed: %v", err)
				return respondMessage(c, http.StatusInternalServerError, msgAuthorizationCheckFail)
			}

			c.Set(ContextKeyKeyPrincipal, APIKeyPrincipal{
				KeyID:  record.ID,
				UserID: record.UserID,
			})

			return next(c)
		}
	}
}

func extractAPIKey(c echo.Context) string {
	if key := strings.TrimSpace(c.Request().Header.Get(headerAPIKey)); key != "" {
		return key
	}
	return strings.TrimSpace(c.QueryParam(queryAPIKey))
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}
