package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yashdave182/FinAgent/internal/pkg/models"
	"github.com/yashdave182/FinAgent/internal/pkg/utils/worker"
)

type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) GetSession(ctx context.Context, sessionId string) (*models.ConversationSession, error) {
	args := m.Called(ctx, sessionId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ConversationSession), args.Error(1)
}

func (m *MockSessionStore) PutSession(ctx context.Context, session *models.ConversationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) DeleteSession(ctx context.Context, sessionId string) error {
	args := m.Called(ctx, sessionId)
	return args.Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetUserProfile(ctx context.Context, userId string) (*models.UserProfile, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockApplicationCreator struct {
	mock.Mock
}

func (m *MockApplicationCreator) CreateApplication(ctx context.Context, userId string, session *models.ConversationSession) (string, error) {
	args := m.Called(ctx, userId, session)
	return args.String(0), args.Error(1)
}

type MockLoanApplicationStore struct {
	mock.Mock
}

func (m *MockLoanApplicationStore) CreateLoanApplication(ctx context.Context, application models.LoanApplication) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

func (m *MockLoanApplicationStore) LoanApplicationById(ctx context.Context, loanId string) (*models.LoanApplication, error) {
	args := m.Called(ctx, loanId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationStore) LoanApplicationsByUser(ctx context.Context, userId string) ([]models.LoanApplication, error) {
	args := m.Called(ctx, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LoanApplication), args.Error(1)
}

func (m *MockLoanApplicationStore) SetSanctionDocumentRef(ctx context.Context, loanId string, documentRef string) error {
	args := m.Called(ctx, loanId, documentRef)
	return args.Error(0)
}

type MockSanctionDocumentStore struct {
	mock.Mock
}

func (m *MockSanctionDocumentStore) CreateSanctionDocument(ctx context.Context, document models.SanctionDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockSanctionDocumentStore) SanctionDocumentByLoanId(ctx context.Context, loanId string) (*models.SanctionDocument, error) {
	args := m.Called(ctx, loanId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SanctionDocument), args.Error(1)
}

type MockSanctionDocumentService struct {
	mock.Mock
}

func (m *MockSanctionDocumentService) IssueSanctionDocument(ctx context.Context, application models.LoanApplication) (*models.SanctionDocument, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SanctionDocument), args.Error(1)
}

type MockDecisionAuditPublisher struct {
	mock.Mock
}

func (m *MockDecisionAuditPublisher) PublishDecisionEvent(ctx context.Context, event models.DecisionAuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockSanctionNotifier struct {
	mock.Mock
}

func (m *MockSanctionNotifier) NotifySanctionIssued(ctx context.Context, profile *models.UserProfile, application models.LoanApplication) error {
	args := m.Called(ctx, profile, application)
	return args.Error(0)
}

// syncWorkerPool runs submitted tasks inline so tests observe async side
// effects deterministically.
type syncWorkerPool struct{}

func (syncWorkerPool) Submit(task worker.Task) {
	task()
}
