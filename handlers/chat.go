// File: handlers/chat.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"agendabot/models"
	"agendabot/services/agent"
	"agendabot/utils"
)

// ChatHandler exposes the conversational agent over HTTP.
type ChatHandler struct {
	Agent  agent.Service
	Logger *zap.Logger
}

func NewChatHandler(agentSvc agent.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Agent: agentSvc, Logger: logger}
}

// HandleChatMessage receives one inbound chat message and returns the agent's
// reply for the same user.
func (h *ChatHandler) HandleChatMessage(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Correlates the log lines of one turn across the agent's collaborators.
	requestID := uuid.New().String()
	h.Logger.Info("Chat message received",
		zap.String("requestID", requestID),
		zap.String("user", req.UserID),
	)

	resp, err := h.Agent.HandleMessage(c.Request.Context(), req.UserID, req.Text)
	if err != nil {
		h.Logger.Error("Chat turn failed",
			zap.String("requestID", requestID),
			zap.String("user", req.UserID),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusInternalServerError, "Could not process your message", "Please try again later.")
		return
	}

	c.JSON(http.StatusOK, resp)
}
