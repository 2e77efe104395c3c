package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

// ApplicationService turns an accepted decision into a persisted loan
// application. The insert is synchronous; sanction document issuance, the
// notification, and the audit event fan out on the worker pool so the chat
// turn does not wait on them.
type ApplicationService struct {
	profileRepo     ProfileLookupInterface
	applicationRepo LoanApplicationStoreInterface
	sanctionService SanctionDocumentServiceInterface
	notifier        SanctionNotifierInterface
	auditPub        DecisionAuditPublisherInterface
	workerPool      WorkerPoolInterface
}

func NewApplicationService(
	profileRepo ProfileLookupInterface,
	applicationRepo LoanApplicationStoreInterface,
	sanctionService SanctionDocumentServiceInterface,
	notifier SanctionNotifierInterface,
	auditPub DecisionAuditPublisherInterface,
	workerPool WorkerPoolInterface,
) *ApplicationService {
	return &ApplicationService{
		profileRepo:     profileRepo,
		applicationRepo: applicationRepo,
		sanctionService: sanctionService,
		notifier:        notifier,
		auditPub:        auditPub,
		workerPool:      workerPool,
	}
}

// CreateApplication persists one application for the decision stored in the
// session and returns its loan id. Only APPROVED and ADJUST decisions are
// creatable; ADJUST means the user accepted the revised terms.
func (s *ApplicationService) CreateApplication(ctx context.Context, userId string, session *models.ConversationSession) (string, error) {

	if session == nil || session.LastDecision == nil {
		return "", consts.ErrorNoDecisionInSession
	}
	if !session.HasSanctionableDecision() {
		return "", consts.ErrorDecisionNotSanctionable
	}

	profile, err := s.profileRepo.GetUserProfile(ctx, userId)
	if err != nil {
		return "", err
	}

	decision := *session.LastDecision
	loanId := uuid.NewString()

	application := common.SerializeLoanApplication(profile, session.SessionId, decision, loanId)
	if err := s.applicationRepo.CreateLoanApplication(ctx, application); err != nil {
		return "", consts.ErrorApplicationCreationFailed
	}

	logger.Info(ctx, "ApplicationService : created application %v for user %v amount %v", loanId, userId, decision.ApprovedAmount)

	s.fanOutSanction(ctx, profile, application, decision, session.SessionId)

	return loanId, nil
}

// fanOutSanction schedules the post-creation side effects. Their failures
// are logged, never surfaced: the application record is already the source
// of truth.
func (s *ApplicationService) fanOutSanction(ctx context.Context, profile *models.UserProfile, application models.LoanApplication, decision models.UnderwritingDecision, sessionId string) {

	if s.workerPool == nil {
		return
	}

	userId := profile.UserId
	loanId := application.LoanId

	s.workerPool.Submit(func() {
		taskCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		document, err := s.sanctionService.IssueSanctionDocument(taskCtx, application)
		if err != nil {
			logger.Error(ctx, "ApplicationService : sanction document failed for loan %v: %v", loanId, err)
			return
		}
		if err := s.applicationRepo.SetSanctionDocumentRef(taskCtx, loanId, document.ReferenceNumber); err != nil {
			logger.Error(ctx, "ApplicationService : document ref update failed for loan %v: %v", loanId, err)
		}
	})

	if s.notifier != nil {
		s.workerPool.Submit(func() {
			taskCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.notifier.NotifySanctionIssued(taskCtx, profile, application); err != nil {
				logger.Error(ctx, "ApplicationService : sanction notification failed for loan %v: %v", loanId, err)
			}
		})
	}

	if s.auditPub != nil {
		event := common.SerializeDecisionAuditEvent(consts.EventSanctionIssued, userId, sessionId, decision, loanId)
		s.workerPool.Submit(func() {
			taskCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.auditPub.PublishDecisionEvent(taskCtx, event); err != nil {
				logger.Error(ctx, "ApplicationService : audit publish failed for loan %v: %v", loanId, err)
			}
		})
	}
}
