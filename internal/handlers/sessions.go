package handlers

import (
	"fmt"
	"net/http"

	"cpace/internal/models"
	"cpace/internal/session"

	"github.com/labstack/echo/v4"
)

// ClearSessionHandler handles deleting a session's conversation history
// @Summary Clear a chat session
// @Description Remove a session's conversation history entirely
// @Tags sessions
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} models.SessionClearedResponse
// @Router /session/{sessionId} [delete]
func ClearSessionHandler(sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: "Session ID is required",
			})
		}

		sessions.Clear(sessionID)

		return c.JSON(http.StatusOK, models.SessionClearedResponse{
			Message: fmt.Sprintf("Session %s cleared", sessionID),
		})
	}
}

// ListSessionsHandler handles listing all active session identifiers
// @Summary List chat sessions
// @Description List all known session identifiers
// @Tags sessions
// @Produce json
// @Success 200 {object} models.SessionListResponse
// @Router /sessions [get]
func ListSessionsHandler(sessions *session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.SessionListResponse{
			Sessions: sessions.List(),
		})
	}
}
