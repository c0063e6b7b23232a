package middleware

import (
	"strings"

	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/adapters/persistence/repositories"
	"schoolhub/internal/config"
	"schoolhub/internal/core/rbac"
	"schoolhub/internal/pkg/response"
	"schoolhub/internal/pkg/token"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the auth pipeline
const (
	IdentityKey = "identity"
	ScopeKey    = "scope"
)

// AuthMiddleware verifies the bearer token and re-resolves the caller's
// identity from storage. The token's embedded role is never trusted for
// authorization, so a role change takes effect on the caller's next
// request even though the token itself stays valid until expiry.
func AuthMiddleware(cfg *config.Config, users repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try the Authorization header
		authHeader := c.Get("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			accessToken = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// 2. Fall back to cookie
		if accessToken == "" {
			accessToken = c.Cookies("access_token")
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Token is missing")
		}

		// 4. Validate token. Malformed, expired and bad-signature all
		// collapse into one response.
		claims, err := token.Verify(accessToken, cfg.JWT.Secret)
		if err != nil {
			return response.Unauthorized(c, "Invalid token")
		}

		// 5. Re-fetch the identity
		identity, err := users.GetByID(c.Context(), claims.UserID)
		if err != nil {
			return response.Unauthorized(c, "Invalid token")
		}

		c.Locals(IdentityKey, identity)
		return c.Next()
	}
}

// RequireResource authorizes the current identity against the static
// permission table and stores the computed row scope for the handler.
func RequireResource(resource rbac.Resource, action rbac.Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := c.Locals(IdentityKey).(*models.User)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		if err := rbac.Authorize(identity.Role, resource, action); err != nil {
			return response.Forbidden(c, "Permission denied")
		}

		c.Locals(ScopeKey, rbac.ScopeFor(identity.Role, identity.ReferenceID))
		return c.Next()
	}
}
