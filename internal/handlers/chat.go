package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cpace/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ChatService produces one assistant reply per user message, maintaining the
// session's history as a side effect.
type ChatService interface {
	Reply(ctx context.Context, sessionID, message string) (string, error)
}

// ChatHandler handles chat requests against the C-PACE agent
// @Summary Chat with the C-PACE agent
// @Description Send a message and receive the agent's reply. A session id is generated when none is supplied.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Chat message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ChatResponse
// @Failure 500 {object} models.ChatResponse
// @Router /chat [post]
func ChatHandler(chat ChatService) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req models.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: fmt.Sprintf("Invalid request body: %v", err),
			})
		}

		if strings.TrimSpace(req.Message) == "" {
			return c.JSON(http.StatusBadRequest, models.ChatResponse{
				Error: "Message cannot be empty",
			})
		}

		sessionID := req.SessionID
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		reply, err := chat.Reply(c.Request().Context(), sessionID, req.Message)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, models.ChatResponse{
				Error: fmt.Sprintf("Chat agent error: %v", err),
			})
		}

		return c.JSON(http.StatusOK, models.ChatResponse{
			Response:  reply,
			SessionID: sessionID,
		})
	}
}
