package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	pkgAuth "github.com/polkiloo/tigercart/internal/pkg/auth"
	"github.com/polkiloo/tigercart/internal/server/http/dto"
)

const (
	// UserIDContextKey is a gin context key for authenticated user identifier.
	UserIDContextKey = "userID"
	// AdminTokenHeader carries the operator secret for admin routes.
	AdminTokenHeader = "X-Admin-Token"
	authCookieName   = "tigercart_session"
)

// TokenParser resolves a session token to a user id.
type TokenParser interface {
	ParseToken(token string) (string, error)
}

// AdminVerifier checks the operator secret.
type AdminVerifier interface {
	VerifyAdmin(token string) error
}

// AuthRequired ensures user is authenticated before accessing handler.
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		userID, err := parser.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				abort(c, http.StatusUnauthorized, "Authentication required")
				return
			}
			abort(c, http.StatusInternalServerError, "Internal server error")
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// AdminRequired guards operator endpoints with the X-Admin-Token header.
func AdminRequired(verifier AdminVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := verifier.VerifyAdmin(c.GetHeader(AdminTokenHeader)); err != nil {
			abort(c, http.StatusForbidden, domainErrors.ErrNotAuthorized.Error())
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

func abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Success: false, Error: msg})
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
