package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

// ConversationService drives one chat turn through the loan application
// state machine. Turns on the same session are serialized with a per-session
// mutex; the session is mutated on a local copy and written back with a
// single PutSession, so a failed turn leaves no partial state behind.
type ConversationService struct {
	sessionStore SessionStoreInterface
	profileRepo  ProfileLookupInterface
	extractor    LoanRequestExtractorInterface
	underwriting UnderwritingEvaluatorInterface
	applications ApplicationCreatorInterface
	auditPub     DecisionAuditPublisherInterface
	workerPool   WorkerPoolInterface
	maxHistory   int
	validityDays int

	sessionLocks sync.Map
}

func NewConversationService(
	sessionStore SessionStoreInterface,
	profileRepo ProfileLookupInterface,
	extractor LoanRequestExtractorInterface,
	underwriting UnderwritingEvaluatorInterface,
	applications ApplicationCreatorInterface,
	auditPub DecisionAuditPublisherInterface,
	workerPool WorkerPoolInterface,
	maxHistory int,
	validityDays int,
) *ConversationService {
	return &ConversationService{
		sessionStore: sessionStore,
		profileRepo:  profileRepo,
		extractor:    extractor,
		underwriting: underwriting,
		applications: applications,
		auditPub:     auditPub,
		workerPool:   workerPool,
		maxHistory:   maxHistory,
		validityDays: validityDays,
	}
}

func (s *ConversationService) lockSession(sessionId string) *sync.Mutex {
	mu, _ := s.sessionLocks.LoadOrStore(sessionId, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ProcessMessage handles one user message and returns the assistant reply.
// At most one underwriting evaluation and one application creation happen
// per turn. Collaborator failures come back as a generic apology with the
// stored session untouched.
func (s *ConversationService) ProcessMessage(ctx context.Context, userId string, sessionId string, message string) (models.ChatResult, error) {

	mu := s.lockSession(sessionId)
	mu.Lock()
	defer mu.Unlock()

	session, err := s.sessionStore.GetSession(ctx, sessionId)
	if err != nil {
		logger.Error(ctx, "Conversation : session load failed for %v: %v", sessionId, err)
		return apologyResult(), nil
	}
	if session == nil {
		now := time.Now().UTC()
		session = &models.ConversationSession{
			SessionId:    sessionId,
			UserId:       userId,
			CurrentStage: consts.StageWelcome,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}

	s.appendHistory(session, consts.RoleUser, message)

	result, routeErr := s.route(ctx, session, userId, message)
	if routeErr != nil {
		// Collaborator failure mid-turn: apologize and leave the stored
		// session exactly as it was.
		logger.Error(ctx, "Conversation : turn failed for session %v: %v", sessionId, routeErr)
		return apologyResult(), nil
	}

	s.appendHistory(session, consts.RoleAssistant, result.Reply)

	if err := s.sessionStore.PutSession(ctx, session); err != nil {
		logger.Error(ctx, "Conversation : session persist failed for %v: %v", sessionId, err)
		if result.LoanId != "" {
			// The application already exists in the store; losing the
			// session must not hide the sanction from the user.
			return result, nil
		}
		return apologyResult(), nil
	}

	return result, nil
}

func (s *ConversationService) route(ctx context.Context, session *models.ConversationSession, userId string, message string) (models.ChatResult, error) {

	if request, ok := s.extractor.ExtractLoanRequest(message); ok {
		result, handled, err := s.handleLoanRequest(ctx, session, userId, *request)
		if err != nil {
			return models.ChatResult{}, err
		}
		if handled {
			return result, nil
		}
	}

	if containsAcceptance(message) && session.HasSanctionableDecision() {
		return s.handleAcceptance(ctx, session, userId)
	}

	if session.CurrentStage == consts.StageWelcome {
		session.CurrentStage = consts.StageGatheringDetails
	}
	return models.ChatResult{Reply: consts.WelcomeMessage}, nil
}

// handleLoanRequest runs exactly one evaluation. A missing profile is not an
// evaluation: the turn falls through to the remaining states, matching the
// behavior for a message that never parsed as a loan request.
func (s *ConversationService) handleLoanRequest(ctx context.Context, session *models.ConversationSession, userId string, request models.LoanRequest) (models.ChatResult, bool, error) {

	profile, err := s.profileRepo.GetUserProfile(ctx, userId)
	if err != nil {
		if err == consts.ErrorUserProfileNotFound {
			logger.Warn(ctx, "Conversation : no profile for user %v, skipping evaluation", userId)
			return models.ChatResult{}, false, nil
		}
		return models.ChatResult{}, false, err
	}

	decision := s.underwriting.Evaluate(ctx, profile.Financials(), request)

	session.LastDecision = &decision
	session.CurrentStage = consts.StageDecisionMade

	s.publishAuditAsync(ctx, consts.EventUnderwritingDecision, userId, session.SessionId, decision, "")

	var reply string
	switch decision.Decision {
	case consts.DecisionApproved:
		reply = fmt.Sprintf(consts.ApprovedReplyFormat,
			common.FormatINR(decision.ApprovedAmount),
			decision.TenureMonths,
			common.FormatINR(decision.Emi),
			decision.InterestRate)
	default:
		// ADJUST and REJECTED speak through the engine's explanation
		reply = decision.Explanation
	}

	return models.ChatResult{Reply: reply, Decision: decision.Decision}, true, nil
}

func (s *ConversationService) handleAcceptance(ctx context.Context, session *models.ConversationSession, userId string) (models.ChatResult, error) {

	loanId, err := s.applications.CreateApplication(ctx, userId, session)
	if err != nil {
		return models.ChatResult{}, err
	}

	decision := session.LastDecision
	session.LoanId = loanId
	session.CurrentStage = consts.StageSanctioned

	reply := fmt.Sprintf(consts.SanctionReplyFormat,
		loanId,
		common.FormatINR(decision.ApprovedAmount),
		decision.TenureMonths,
		common.FormatINR(decision.Emi),
		s.validityDays)

	return models.ChatResult{
		Reply: reply,
		// ADJUST surfaces as APPROVED once the revised terms are accepted
		Decision: consts.DecisionApproved,
		LoanId:   loanId,
	}, nil
}

func (s *ConversationService) appendHistory(session *models.ConversationSession, role string, content string) {

	session.ChatHistory = append(session.ChatHistory, models.ChatHistoryEntry{
		Role:      role,
		Content:   content,
		Timestamp: time.Now().UTC(),
	})
	if s.maxHistory > 0 && len(session.ChatHistory) > s.maxHistory {
		session.ChatHistory = session.ChatHistory[len(session.ChatHistory)-s.maxHistory:]
	}
}

func (s *ConversationService) publishAuditAsync(ctx context.Context, eventType string, userId string, sessionId string, decision models.UnderwritingDecision, loanId string) {

	if s.auditPub == nil || s.workerPool == nil {
		return
	}

	event := common.SerializeDecisionAuditEvent(eventType, userId, sessionId, decision, loanId)
	s.workerPool.Submit(func() {
		auditCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.auditPub.PublishDecisionEvent(auditCtx, event); err != nil {
			logger.Error(ctx, "Conversation : audit publish failed for session %v: %v", sessionId, err)
		}
	})
}

func containsAcceptance(message string) bool {
	lower := strings.ToLower(message)
	for _, keyword := range consts.AcceptanceKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func apologyResult() models.ChatResult {
	return models.ChatResult{Reply: consts.ApologyMessage}
}
