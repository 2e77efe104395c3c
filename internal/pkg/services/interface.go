package services

import (
	"context"

	"github.com/yashdave182/FinAgent/internal/pkg/models"
	"github.com/yashdave182/FinAgent/internal/pkg/utils/worker"
)

type SessionStoreInterface interface {
	GetSession(ctx context.Context, sessionId string) (*models.ConversationSession, error)
	PutSession(ctx context.Context, session *models.ConversationSession) error
	DeleteSession(ctx context.Context, sessionId string) error
}

type ProfileLookupInterface interface {
	GetUserProfile(ctx context.Context, userId string) (*models.UserProfile, error)
}

type LoanRequestExtractorInterface interface {
	ExtractLoanRequest(text string) (*models.LoanRequest, bool)
}

type UnderwritingEvaluatorInterface interface {
	Evaluate(ctx context.Context, financials models.ApplicantFinancials, request models.LoanRequest) models.UnderwritingDecision
}

type ApplicationCreatorInterface interface {
	CreateApplication(ctx context.Context, userId string, session *models.ConversationSession) (string, error)
}

type LoanApplicationStoreInterface interface {
	CreateLoanApplication(ctx context.Context, application models.LoanApplication) error
	LoanApplicationById(ctx context.Context, loanId string) (*models.LoanApplication, error)
	LoanApplicationsByUser(ctx context.Context, userId string) ([]models.LoanApplication, error)
	SetSanctionDocumentRef(ctx context.Context, loanId string, documentRef string) error
}

type ConversationServiceInterface interface {
	ProcessMessage(ctx context.Context, userId string, sessionId string, message string) (models.ChatResult, error)
}

type ProfileAdminInterface interface {
	UpsertUserProfile(ctx context.Context, profile models.UserProfile) error
}

type SanctionDocumentStoreInterface interface {
	CreateSanctionDocument(ctx context.Context, document models.SanctionDocument) error
	SanctionDocumentByLoanId(ctx context.Context, loanId string) (*models.SanctionDocument, error)
}

type SanctionDocumentServiceInterface interface {
	IssueSanctionDocument(ctx context.Context, application models.LoanApplication) (*models.SanctionDocument, error)
}

type DecisionAuditPublisherInterface interface {
	PublishDecisionEvent(ctx context.Context, event models.DecisionAuditEvent) error
}

type SanctionNotifierInterface interface {
	NotifySanctionIssued(ctx context.Context, profile *models.UserProfile, application models.LoanApplication) error
}

type WorkerPoolInterface interface {
	Submit(task worker.Task)
}
