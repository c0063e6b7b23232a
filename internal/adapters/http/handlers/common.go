package handlers

import (
	"schoolhub/internal/adapters/http/middleware"
	"schoolhub/internal/adapters/persistence/models"
	"schoolhub/internal/core/rbac"

	"github.com/gofiber/fiber/v2"
)

// currentIdentity returns the identity set by the auth middleware
func currentIdentity(c *fiber.Ctx) (*models.User, bool) {
	identity, ok := c.Locals(middleware.IdentityKey).(*models.User)
	return identity, ok
}

// currentScope returns the row scope set by the authorization
// middleware. Missing scope degrades to ScopeNone, never to ScopeAll.
func currentScope(c *fiber.Ctx) rbac.Scope {
	if scope, ok := c.Locals(middleware.ScopeKey).(rbac.Scope); ok {
		return scope
	}
	return rbac.Scope{Kind: rbac.ScopeNone}
}
