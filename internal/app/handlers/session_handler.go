package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
	"github.com/yashdave182/FinAgent/internal/pkg/services"
	"github.com/yashdave182/FinAgent/internal/pkg/utils"
)

type SessionHandler struct {
	sessionStore services.SessionStoreInterface
	profileRepo  services.ProfileAdminInterface
}

func NewSessionHandler(sessionStore services.SessionStoreInterface, profileRepo services.ProfileAdminInterface) *SessionHandler {
	return &SessionHandler{
		sessionStore: sessionStore,
		profileRepo:  profileRepo,
	}
}

// SessionInfo returns session state without the full chat transcript.
func (h *SessionHandler) SessionInfo(c *gin.Context) {
	sessionId := c.Param("sessionId")

	session, err := h.sessionStore.GetSession(c.Request.Context(), sessionId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": consts.ErrorSessionNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id":    session.SessionId,
		"user_id":       session.UserId,
		"current_stage": session.CurrentStage,
		"message_count": len(session.ChatHistory),
		"loan_id":       session.LoanId,
		"created_at":    session.CreatedAt,
		"updated_at":    session.UpdatedAt,
	})
}

// SessionHistory returns the capped chat transcript for a session.
func (h *SessionHandler) SessionHistory(c *gin.Context) {
	sessionId := c.Param("sessionId")

	session, err := h.sessionStore.GetSession(c.Request.Context(), sessionId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": consts.ErrorSessionNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.SessionId,
		"history":    session.ChatHistory,
		"count":      len(session.ChatHistory),
	})
}

func (h *SessionHandler) ClearSession(c *gin.Context) {
	sessionId := c.Param("sessionId")
	ctx := c.Request.Context()

	if err := h.sessionStore.DeleteSession(ctx, sessionId); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info(ctx, "Cleared session %v", sessionId)
	c.JSON(http.StatusOK, gin.H{"message": "Session cleared successfully", "success": true})
}

// UpsertProfile is the admin surface for seeding and correcting applicant
// profiles.
func (h *SessionHandler) UpsertProfile(c *gin.Context) {
	var body models.UserProfile

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	if valid, _ := utils.IsValidUserId(body.UserId); !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     consts.ErrorUserIdFormatValidationFailed.Error(),
			"errorCode": consts.ErrorUserIdFormatValidationFailed.ErrorCode(),
		})
		return
	}

	now := time.Now().UTC()
	if body.CreatedAt.IsZero() {
		body.CreatedAt = now
	}
	body.UpdatedAt = now

	if err := h.profileRepo.UpsertUserProfile(ctx, body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	logger.Info(ctx, "Upserted profile for user %v", body.UserId)
	c.JSON(http.StatusOK, gin.H{"message": "Profile saved", "user_id": body.UserId})
}
