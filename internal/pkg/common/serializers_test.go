package common

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Millions", 1234567, "1,234,567"},
		{"Hundred thousands", 500000, "500,000"},
		{"Thousands", 50000, "50,000"},
		{"Hundreds need no separator", 999, "999"},
		{"Zero", 0, "0"},
		{"Rounds fractional paise", 16607.16, "16,607"},
		{"Rounds up", 16607.56, "16,608"},
		{"Negative", -240860.05, "-240,860"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.amount))
		})
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "43.9%", FormatPercent(0.439))
	assert.Equal(t, "40.0%", FormatPercent(0.4))
	assert.Equal(t, "100.0%", FormatPercent(1.0))
	assert.Equal(t, "0.0%", FormatPercent(0))
}

func TestSerializeLoanApplication(t *testing.T) {
	profile := &models.UserProfile{
		UserId:   "user-123",
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
	}
	decision := models.UnderwritingDecision{
		Decision:        "ADJUST",
		RiskBand:        "B",
		RequestedAmount: 300000,
		ApprovedAmount:  240860.05,
		TenureMonths:    36,
		Emi:             8000,
		InterestRate:    12.0,
		CreditScore:     690,
		Foir:            0.439,
		TotalPayable:    288000,
		ProcessingFee:   4817.2,
	}

	application := SerializeLoanApplication(profile, "session-1", decision, "loan-abc-123")

	assert.Equal(t, "loan-abc-123", application.LoanId)
	assert.Equal(t, "user-123", application.UserId)
	assert.Equal(t, "Priya Sharma", application.FullName)
	assert.Equal(t, "priya@example.com", application.Email)
	assert.Equal(t, 300000.0, application.RequestedAmount)
	assert.Equal(t, 240860.05, application.ApprovedAmount)
	assert.Equal(t, 36, application.TenureMonths)
	// An accepted ADJUST offer is recorded as a plain approval
	assert.Equal(t, "APPROVED", application.Decision)
	assert.Equal(t, "B", application.RiskBand)
	assert.False(t, application.CreatedAt.IsZero())
	assert.Equal(t, application.CreatedAt, application.UpdatedAt)
	assert.False(t, application.ID.IsZero())
}

func TestSerializeDecisionAuditEvent(t *testing.T) {
	decision := models.UnderwritingDecision{
		Decision:        "APPROVED",
		RiskBand:        "A",
		RequestedAmount: 500000,
		ApprovedAmount:  500000,
		TenureMonths:    36,
		Emi:             16607.16,
		Foir:            0.166,
		CreditScore:     750,
	}

	event := SerializeDecisionAuditEvent("UNDERWRITING_DECISION", "user-123", "session-1", decision, "")

	assert.Equal(t, "UNDERWRITING_DECISION", event.EventType)
	assert.NotEmpty(t, event.GUID)
	assert.Equal(t, "user-123", event.UserId)
	assert.Equal(t, "session-1", event.SessionId)
	assert.Equal(t, "APPROVED", event.Decision)
	assert.Equal(t, 500000.0, event.ApprovedAmt)
	assert.Empty(t, event.LoanId)
	assert.Equal(t, 1, event.SchemaRevision)

	other := SerializeDecisionAuditEvent("UNDERWRITING_DECISION", "user-123", "session-1", decision, "")
	assert.NotEqual(t, event.GUID, other.GUID)
}

func TestSerializeChatResponse(t *testing.T) {
	result := models.ChatResult{
		Reply:    "hello",
		Decision: "APPROVED",
		LoanId:   "loan-abc-123",
	}

	response := SerializeChatResponse("session-1", result)

	assert.Equal(t, "hello", response.Reply)
	assert.Equal(t, "session-1", response.SessionId)
	assert.Equal(t, "APPROVED", response.Decision)
	assert.Equal(t, "loan-abc-123", response.LoanId)
	assert.Empty(t, response.ErrorText)
}
