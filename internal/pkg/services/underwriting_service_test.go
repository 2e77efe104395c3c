package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

func testUnderwritingConfig() UnderwritingConfig {
	return UnderwritingConfig{
		MinLoanAmount:        50000,
		MaxLoanAmount:        5000000,
		MinTenureMonths:      6,
		MaxTenureMonths:      60,
		ExcellentCreditScore: 720,
		GoodCreditScore:      680,
		FoirThresholdA:       0.4,
		FoirThresholdB:       0.5,
		InterestRate:         12.0,
	}
}

func TestEvaluateApprovedBandA(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 100000, ExistingEmi: 0, CreditScore: 750}
	request := models.LoanRequest{RequestedAmount: 500000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionApproved, decision.Decision)
	assert.Equal(t, consts.RiskBandA, decision.RiskBand)
	assert.Equal(t, 500000.0, decision.ApprovedAmount)
	assert.Equal(t, 36, decision.TenureMonths)
	assert.InDelta(t, 16607.16, decision.Emi, 0.05)
	assert.InDelta(t, 0.166, decision.Foir, 0.001)
	assert.InDelta(t, decision.Emi*36, decision.TotalPayable, 0.01)
	assert.InDelta(t, 10000.0, decision.ProcessingFee, 0.01)
	assert.Contains(t, decision.Explanation, "Excellent credit score (750)")
}

func TestEvaluateApprovedBandB(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 100000, ExistingEmi: 20000, CreditScore: 700}
	request := models.LoanRequest{RequestedAmount: 500000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionApproved, decision.Decision)
	assert.Equal(t, consts.RiskBandB, decision.RiskBand)
	assert.Equal(t, 500000.0, decision.ApprovedAmount)
	assert.InDelta(t, 0.366, decision.Foir, 0.001)
	assert.Contains(t, decision.Explanation, "Good credit score (700)")
}

func TestEvaluateAdjustOffer(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 50000, ExistingEmi: 12000, CreditScore: 680}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionAdjust, decision.Decision)
	assert.Equal(t, consts.RiskBandB, decision.RiskBand)
	assert.InDelta(t, 240860.05, decision.ApprovedAmount, 1.0)
	assert.Less(t, decision.ApprovedAmount, request.RequestedAmount)
	assert.GreaterOrEqual(t, decision.ApprovedAmount, 50000.0)
	// FOIR stays the pre-adjustment value
	assert.InDelta(t, 0.439, decision.Foir, 0.001)
	// Adjusted EMI fits inside the strict budget
	assert.LessOrEqual(t, decision.Emi, 8000.01)
	assert.Contains(t, decision.Explanation, "Approved with adjustment!")
}

func TestEvaluateAdjustBelowMinimumRejects(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 50000, ExistingEmi: 19000, CreditScore: 700}
	request := models.LoanRequest{RequestedAmount: 150000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionRejected, decision.Decision)
	assert.Equal(t, consts.RiskBandC, decision.RiskBand)
	assert.Equal(t, 0.0, decision.ApprovedAmount)
	assert.Contains(t, decision.Explanation, "below minimum requirement")
}

func TestEvaluateRejectedLowScore(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 100000, ExistingEmi: 0, CreditScore: 600}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionRejected, decision.Decision)
	assert.Equal(t, consts.RiskBandC, decision.RiskBand)
	assert.Equal(t, 0.0, decision.ApprovedAmount)
	assert.Equal(t, 0.0, decision.Emi)
	assert.Equal(t, 0.0, decision.TotalPayable)
	assert.Equal(t, 0.0, decision.ProcessingFee)
	assert.Contains(t, decision.Explanation, "credit score (600) is below minimum requirement (680)")
}

func TestEvaluateRejectedHighFoir(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 30000, ExistingEmi: 10000, CreditScore: 750}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionRejected, decision.Decision)
	assert.Contains(t, decision.Explanation, "FOIR")
	assert.Contains(t, decision.Explanation, "exceeds maximum threshold")
}

func TestEvaluateRejectedBothReasons(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 30000, ExistingEmi: 10000, CreditScore: 600}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionRejected, decision.Decision)
	assert.Contains(t, decision.Explanation, "credit score")
	assert.Contains(t, decision.Explanation, " and ")
	assert.Contains(t, decision.Explanation, "FOIR")
}

func TestEvaluateValidationRejections(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())
	financials := models.ApplicantFinancials{MonthlyIncome: 100000, ExistingEmi: 0, CreditScore: 750}

	tests := []struct {
		name            string
		financials      models.ApplicantFinancials
		request         models.LoanRequest
		expectedMessage string
	}{
		{
			name:            "Amount below minimum",
			financials:      financials,
			request:         models.LoanRequest{RequestedAmount: 30000, RequestedTenureMonths: 12},
			expectedMessage: "Loan amount must be at least ₹50,000",
		},
		{
			name:            "Amount above maximum",
			financials:      financials,
			request:         models.LoanRequest{RequestedAmount: 6000000, RequestedTenureMonths: 36},
			expectedMessage: "Loan amount cannot exceed ₹5,000,000",
		},
		{
			name:            "Tenure too short",
			financials:      financials,
			request:         models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 3},
			expectedMessage: "Tenure must be at least 6 months",
		},
		{
			name:            "Tenure too long",
			financials:      financials,
			request:         models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 72},
			expectedMessage: "Tenure cannot exceed 60 months",
		},
		{
			name:            "Missing income",
			financials:      models.ApplicantFinancials{MonthlyIncome: 0, CreditScore: 750},
			request:         models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36},
			expectedMessage: "Valid monthly income is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := service.Evaluate(context.Background(), tt.financials, tt.request)

			assert.Equal(t, consts.DecisionRejected, decision.Decision)
			assert.Equal(t, consts.RiskBandC, decision.RiskBand)
			assert.Equal(t, 0.0, decision.ApprovedAmount)
			assert.Equal(t, tt.expectedMessage, decision.Explanation)
		})
	}
}

func TestEvaluateBoundaryScoreAndFoir(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	// (14035.71 + 9964.29) / 60000 lands exactly on the strict ceiling
	financials := models.ApplicantFinancials{MonthlyIncome: 60000, ExistingEmi: 14035.71, CreditScore: 720}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	decision := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, consts.DecisionApproved, decision.Decision)
	assert.Equal(t, consts.RiskBandA, decision.RiskBand)
	assert.InDelta(t, 0.4, decision.Foir, 0.0005)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	service := NewUnderwritingService(testUnderwritingConfig())

	financials := models.ApplicantFinancials{MonthlyIncome: 50000, ExistingEmi: 12000, CreditScore: 680}
	request := models.LoanRequest{RequestedAmount: 300000, RequestedTenureMonths: 36}

	first := service.Evaluate(context.Background(), financials, request)
	second := service.Evaluate(context.Background(), financials, request)

	assert.Equal(t, first, second)
}

func TestEvaluateFoirClampsOnZeroIncome(t *testing.T) {
	foir := calculateFoir(10000, 5000, 0)
	assert.Equal(t, 1.0, foir)

	foir = calculateFoir(10000, 5000, -100)
	assert.Equal(t, 1.0, foir)
}
