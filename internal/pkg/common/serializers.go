package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/yashdave182/FinAgent/configs"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

// FormatINR renders a currency amount with thousands separators and no
// decimals, the way customer-facing copy shows rupee figures.
func FormatINR(amount float64) string {
	s := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}

// FormatPercent renders a ratio as a percentage with one decimal ("0.439" -> "43.9%").
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func SerializeLoanApplication(profile *models.UserProfile, sessionId string, decision models.UnderwritingDecision, loanId string) models.LoanApplication {

	now := time.Now().UTC()

	return models.LoanApplication{
		ID:                    primitive.NewObjectID(),
		LoanId:                loanId,
		UserId:                profile.UserId,
		FullName:              profile.FullName,
		Email:                 profile.Email,
		RequestedAmount:       decision.RequestedAmount,
		RequestedTenureMonths: decision.TenureMonths,
		ApprovedAmount:        decision.ApprovedAmount,
		TenureMonths:          decision.TenureMonths,
		Emi:                   decision.Emi,
		InterestRate:          decision.InterestRate,
		CreditScore:           decision.CreditScore,
		Foir:                  decision.Foir,
		// ADJUST records as APPROVED once the user accepts the revised terms
		Decision:      "APPROVED",
		RiskBand:      decision.RiskBand,
		Explanation:   decision.Explanation,
		TotalPayable:  decision.TotalPayable,
		ProcessingFee: decision.ProcessingFee,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func SerializeDecisionAuditEvent(eventType string, userId string, sessionId string, decision models.UnderwritingDecision, loanId string) models.DecisionAuditEvent {

	return models.DecisionAuditEvent{
		EventType:      eventType,
		GUID:           uuid.NewString(),
		UserId:         userId,
		SessionId:      sessionId,
		Decision:       decision.Decision,
		RiskBand:       decision.RiskBand,
		RequestedAmt:   decision.RequestedAmount,
		ApprovedAmt:    decision.ApprovedAmount,
		TenureMonths:   decision.TenureMonths,
		Emi:            decision.Emi,
		Foir:           decision.Foir,
		CreditScore:    decision.CreditScore,
		LoanId:         loanId,
		CreatedAt:      time.Now().UTC(),
		PublishedBy:    configs.SERVICE_NAME,
		SchemaRevision: 1,
	}
}

func SerializeChatResponse(sessionId string, result models.ChatResult) models.ChatResponse {

	return models.ChatResponse{
		Reply:     result.Reply,
		SessionId: sessionId,
		Decision:  result.Decision,
		LoanId:    result.LoanId,
	}
}
