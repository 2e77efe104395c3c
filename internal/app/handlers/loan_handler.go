package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/services"
	"github.com/yashdave182/FinAgent/internal/pkg/utils"
)

type LoanHandler struct {
	applicationRepo services.LoanApplicationStoreInterface
	documentRepo    services.SanctionDocumentStoreInterface
}

func NewLoanHandler(applicationRepo services.LoanApplicationStoreInterface, documentRepo services.SanctionDocumentStoreInterface) *LoanHandler {
	return &LoanHandler{
		applicationRepo: applicationRepo,
		documentRepo:    documentRepo,
	}
}

func (h *LoanHandler) LoanById(c *gin.Context) {
	loanId := c.Param("loanId")

	application, err := h.applicationRepo.LoanApplicationById(c.Request.Context(), loanId)
	if err != nil {
		if err == consts.ErrorLoanApplicationNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, application)
}

func (h *LoanHandler) SanctionDocument(c *gin.Context) {
	loanId := c.Param("loanId")

	document, err := h.documentRepo.SanctionDocumentByLoanId(c.Request.Context(), loanId)
	if err != nil {
		if err == consts.ErrorSanctionDocumentNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, document)
}

func (h *LoanHandler) LoansByUser(c *gin.Context) {
	userId := c.Param("userId")

	if valid, _ := utils.IsValidUserId(userId); !valid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     consts.ErrorUserIdFormatValidationFailed.Error(),
			"errorCode": consts.ErrorUserIdFormatValidationFailed.ErrorCode(),
		})
		return
	}

	applications, err := h.applicationRepo.LoanApplicationsByUser(c.Request.Context(), userId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userId,
		"loans":   applications,
		"count":   len(applications),
	})
}
