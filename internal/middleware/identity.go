package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kelvinmfon2025/book-api/internal/authz"
	"github.com/kelvinmfon2025/book-api/internal/domain"
)

const (
	// UserIDHeader carries the authenticated user's ID, set by the gateway.
	UserIDHeader = "X-User-ID"
	// UserRoleHeader carries the authenticated user's role.
	UserRoleHeader = "X-User-Role"
	// IdentityKey is the context key for the caller identity
	IdentityKey = "identity"
)

// Identity reads the caller set by the upstream authenticating gateway. It
// never rejects a request; RequireIdentity does that for protected routes.
// A missing role header means member. An unknown role leaves the request
// unauthenticated.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" {
			c.Next()
			return
		}

		role := strings.ToLower(strings.TrimSpace(c.GetHeader(UserRoleHeader)))
		if role == "" {
			role = string(domain.RoleMember)
		}
		if !domain.IsValidRole(role) {
			c.Next()
			return
		}

		c.Set(IdentityKey, domain.Identity{UserID: userID, Role: domain.Role(role)})
		c.Next()
	}
}

// GetIdentity returns the caller identity, or the zero Identity when the
// request is anonymous.
func GetIdentity(c *gin.Context) domain.Identity {
	if v, exists := c.Get(IdentityKey); exists {
		if id, ok := v.(domain.Identity); ok {
			return id
		}
	}
	return domain.Identity{}
}

// RequireIdentity aborts anonymous requests with 401.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrNotAuthenticated.Error()})
			return
		}
		c.Next()
	}
}

// RequireAction aborts with 401 for anonymous callers and 403 for callers
// whose role does not allow action.
func RequireAction(action authz.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := GetIdentity(c)
		if !id.Authenticated() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": domain.ErrNotAuthenticated.Error()})
			return
		}
		if !authz.Allowed(id.Role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": domain.ErrAccessDenied.Error()})
			return
		}
		c.Next()
	}
}
