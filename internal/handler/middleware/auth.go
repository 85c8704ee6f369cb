package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"reserva/internal/domain/user"
	"reserva/internal/pkg/cookie"
	"reserva/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	sessionValidator usecase.SessionValidator
}

const (
	ctxUserIDKey       = "user_id"
	ctxUserRoleKey     = "user_role"
	ctxSessionTokenKey = "session_token"
)

func NewAuthMiddleware(sessionValidator usecase.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		sessionValidator: sessionValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken := extractSessionToken(c)

		if sessionToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		userID, role, err := m.sessionValidator.ValidateSession(c.Request.Context(), sessionToken)
		if err != nil {
			slog.Warn("Session validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, role)
		c.Set(ctxSessionTokenKey, sessionToken)
		c.Next()
	}
}

// RequireRoles gates mutating endpoints behind an operation-specific role
// set. Must be used after RequireAuth().
func (m *AuthMiddleware) RequireRoles(allowed ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

func extractSessionToken(c *gin.Context) string {
	sessionToken := cookie.GetSessionToken(c)
	if sessionToken != "" {
		return sessionToken
	}

	// Cookie-less clients may carry the token as a bearer credential
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

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

func GetSessionToken(c *gin.Context) (string, bool) {
	sessionToken, exists := c.Get(ctxSessionTokenKey)
	if !exists {
		return "", false
	}

	s, ok := sessionToken.(string)
	return s, ok
}
