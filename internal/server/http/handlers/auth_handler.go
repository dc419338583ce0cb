package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/server/http/dto"
	"github.com/polkiloo/tigercart/internal/server/http/middleware"
)

// AuthHandler processes CAS login and logout.
type AuthHandler struct {
	facade AuthFacade
	logger *slog.Logger
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{facade: facade, logger: logger}
}

// Login handles GET /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var q dto.LoginQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query")
		return
	}
	service := q.Service
	if service == "" {
		service = serviceURL(c)
	}

	if q.Ticket == "" {
		c.Redirect(http.StatusFound, h.facade.LoginURL(service))
		return
	}

	usr, token, err := h.facade.Login(c.Request.Context(), service, q.Ticket)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidTicket) {
			c.Redirect(http.StatusFound, h.facade.LoginURL(service))
			return
		}
		respondError(c, h.logger, "login", err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{UserID: usr.ID, ProfileComplete: usr.ProfileComplete()})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true, Message: "Logged out"})
}

// serviceURL rebuilds the URL CAS should send the browser back to.
func serviceURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u := url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path}
	return u.String()
}
