package handler

import (
	"net/http"
	"strings"

	"horizonbot/internal/model"
	"horizonbot/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chatbot HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: message is empty"})
		return
	}

	response, err := h.chatService.Reply(c.Request.Context(), req.Message)
	if err != nil {
		writeError(c, "Chat failed", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetResponse handles GET /chatbot/get-response/?message=, the contract
// used by the embedded chat widget
func (h *ChatHandler) GetResponse(c *gin.Context) {
	message := c.Query("message")
	if strings.TrimSpace(message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	response, err := h.chatService.Reply(c.Request.Context(), message)
	if err != nil {
		writeError(c, "Chat failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response.Response})
}
