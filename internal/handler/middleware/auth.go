package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"car-rental/internal/domain/customer"
	"car-rental/internal/handler/httpresp"
	"car-rental/internal/pkg/cookie"
	"car-rental/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	verifier    usecase.TokenVerifier
	permissions usecase.PermissionChecker
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(verifier usecase.TokenVerifier, permissions usecase.PermissionChecker) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:    verifier,
		permissions: permissions,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httpresp.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required")
			return
		}

		principal, err := m.verifier.Verify(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httpresp.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token")
			return
		}

		c.Set(ctxUserIDKey, principal.ID)
		c.Set(ctxUserRoleKey, principal.Role)
		c.Next()
	}
}

// RequireCapability must run after RequireAuth.
func (m *AuthMiddleware) RequireCapability(capability usecase.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			httpresp.AbortWithError(c, http.StatusInternalServerError, nil, "Internal server error")
			return
		}

		if !m.permissions.Can(principal, capability) {
			httpresp.AbortWithError(c, http.StatusForbidden, nil, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (customer.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(customer.Role)
	return role, ok
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return usecase.Principal{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return usecase.Principal{}, false
	}
	return usecase.Principal{ID: id, Role: role}, true
}
