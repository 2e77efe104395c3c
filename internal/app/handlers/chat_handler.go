package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
	"github.com/yashdave182/FinAgent/internal/pkg/services"
	"github.com/yashdave182/FinAgent/internal/pkg/utils"
)

type ChatHandler struct {
	service services.ConversationServiceInterface
}

func NewChatHandler(service services.ConversationServiceInterface) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat processes one conversational turn. A missing or malformed session id
// starts a new session; the id actually used always comes back in the
// response.
func (h *ChatHandler) Chat(c *gin.Context) {
	var body models.ChatRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if valid, _ := utils.IsValidUserId(body.UserId); !valid {
		logger.Warn(ctx, "Chat : invalid user id %v", body.UserId)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     consts.ErrorUserIdFormatValidationFailed.Error(),
			"errorCode": consts.ErrorUserIdFormatValidationFailed.ErrorCode(),
		})
		return
	}

	sessionId := body.SessionId
	if valid, _ := utils.IsValidSessionId(sessionId); !valid {
		sessionId = uuid.NewString()
		logger.Info(ctx, "Chat : created new session %v for user %v", sessionId, body.UserId)
	}

	result, err := h.service.ProcessMessage(ctx, body.UserId, sessionId, body.Message)
	if err != nil {
		logger.Error(ctx, "Chat : processing failed for session %v: %v", sessionId, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, common.SerializeChatResponse(sessionId, result))
}
