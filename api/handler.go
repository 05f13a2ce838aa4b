// Package api provides the HTTP handlers for the chat service.
package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/vincenth777/census-chat/internal/chat"
	"github.com/vincenth777/census-chat/web"
)

const sessionCookie = "sid"

// Handler handles HTTP requests.
type Handler struct {
	svc *chat.Service
}

// NewHandler creates a new handler.
func NewHandler(svc *chat.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.POST("/chat", h.Chat)
	e.GET("/ws", h.ChatSocket)
	e.POST("/reset", h.Reset)
	e.GET("/health", h.Health)
}

// sessionID returns the caller's session cookie, minting one when absent.
func sessionID(c echo.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	sid := uuid.New().String()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sid
}

// Index serves the chat page.
// GET /
func (h *Handler) Index(c echo.Context) error {
	sessionID(c)
	return c.HTMLBlob(http.StatusOK, web.IndexHTML)
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat resolves one user message and returns the ordered step sequence.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Empty message"})
	}

	sid := sessionID(c)
	steps := h.svc.HandleTurn(c.Request().Context(), sid, message)
	return c.JSON(http.StatusOK, map[string]interface{}{"steps": steps})
}

// Reset discards the caller's conversation. Safe to call repeatedly.
// POST /reset
func (h *Handler) Reset(c echo.Context) error {
	h.svc.ClearSession(sessionID(c))
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
