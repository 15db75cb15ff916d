package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Pranjalsahu8818/healthpredict/internal/app/ds"
	"github.com/Pranjalsahu8818/healthpredict/internal/app/pkg/auth"
)

const (
	UserIDKey = "user_id"
	EmailKey  = "email"
	RoleKey   = "role"
)

// AuthService bundles the two authentication backends.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware authenticates via bearer JWT or session cookie.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if setIdentityFromRequest(c, authSvc) {
			c.Next()
			return
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

// OptionalAuthMiddleware sets the identity when present but never rejects.
func OptionalAuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		setIdentityFromRequest(c, authSvc)
		c.Next()
	}
}

func setIdentityFromRequest(c *gin.Context, authSvc *AuthService) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authSvc.JWT.Validate(tokenString)
		if err == nil {
			c.Set(UserIDKey, claims.UserID)
			c.Set(EmailKey, claims.Email)
			c.Set(RoleKey, claims.Role)
			return true
		}
	}

	// fall back to the session cookie
	sessionID, err := c.Cookie("session_id")
	if err == nil && sessionID != "" && authSvc.Session != nil {
		sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
		if err == nil && sessionData != nil {
			c.Set(UserIDKey, sessionData.UserID)
			c.Set(EmailKey, sessionData.Email)
			c.Set(RoleKey, sessionData.Role)
			// sliding expiry
			_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
			return true
		}
	}
	return false
}

// RequireAdminMiddleware rejects non-admin callers. Must run after
// AuthMiddleware.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(RoleKey)
		if !exists || role.(string) != ds.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUserID reads the authenticated user's id from the context.
func GetCurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}

// GetCurrentEmail reads the authenticated user's email from the context.
func GetCurrentEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(EmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}

// IsCurrentUserAdmin reports whether the caller has the admin role.
func IsCurrentUserAdmin(c *gin.Context) bool {
	role, exists := c.Get(RoleKey)
	if !exists {
		return false
	}
	return role.(string) == ds.RoleAdmin
}
