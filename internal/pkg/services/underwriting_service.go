package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yashdave182/FinAgent/configs"
	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

// UnderwritingConfig carries the tunable thresholds of the decision ladder.
type UnderwritingConfig struct {
	MinLoanAmount        float64
	MaxLoanAmount        float64
	MinTenureMonths      int
	MaxTenureMonths      int
	ExcellentCreditScore int
	GoodCreditScore      int
	FoirThresholdA       float64
	FoirThresholdB       float64
	InterestRate         float64
}

func DefaultUnderwritingConfig() UnderwritingConfig {
	return UnderwritingConfig{
		MinLoanAmount:        configs.MIN_LOAN_AMOUNT,
		MaxLoanAmount:        configs.MAX_LOAN_AMOUNT,
		MinTenureMonths:      configs.MIN_TENURE_MONTHS,
		MaxTenureMonths:      configs.MAX_TENURE_MONTHS,
		ExcellentCreditScore: configs.EXCELLENT_CREDIT_SCORE,
		GoodCreditScore:      configs.GOOD_CREDIT_SCORE,
		FoirThresholdA:       configs.FOIR_THRESHOLD_A,
		FoirThresholdB:       configs.FOIR_THRESHOLD_B,
		InterestRate:         configs.DEFAULT_INTEREST_RATE,
	}
}

type UnderwritingService struct {
	cfg UnderwritingConfig
}

func NewUnderwritingService(cfg UnderwritingConfig) *UnderwritingService {
	return &UnderwritingService{cfg: cfg}
}

// Evaluate applies the credit ladder to one request and returns exactly one
// of APPROVED, ADJUST, REJECTED. It is a pure function of its inputs: no
// persistence, no side effects beyond logging, so evaluating the same
// (financials, request) twice yields identical decisions.
//
// Out-of-range requests and non-positive income come back as REJECTED
// decisions with a human-readable reason — they are expected business
// outcomes, not errors.
func (s *UnderwritingService) Evaluate(ctx context.Context, financials models.ApplicantFinancials, request models.LoanRequest) models.UnderwritingDecision {

	logger.Info(ctx, "Evaluating loan: amount=%v, tenure=%v", request.RequestedAmount, request.RequestedTenureMonths)

	if reason := s.validateLoanRequest(request, financials.MonthlyIncome); reason != "" {
		return s.rejectionDecision(request, financials.CreditScore, 0, reason)
	}

	// Validation guarantees positive tenure and amount from here on
	emi, err := CalculateEMI(request.RequestedAmount, s.cfg.InterestRate, request.RequestedTenureMonths)
	if err != nil {
		logger.Error(ctx, "Unexpected EMI failure for validated input: %v", err)
		return s.rejectionDecision(request, financials.CreditScore, 0, "We could not process this loan request.")
	}

	foir := calculateFoir(financials.ExistingEmi, emi, financials.MonthlyIncome)

	decision := s.makeDecision(ctx, financials, request, emi, foir)

	logger.Info(ctx, "Underwriting decision: %v amount=%v credit_score=%v foir=%v risk_band=%v",
		decision.Decision, decision.ApprovedAmount, financials.CreditScore, foir, decision.RiskBand)

	return decision
}

func (s *UnderwritingService) validateLoanRequest(request models.LoanRequest, monthlyIncome float64) string {

	if request.RequestedAmount < s.cfg.MinLoanAmount {
		return fmt.Sprintf("Loan amount must be at least ₹%s", common.FormatINR(s.cfg.MinLoanAmount))
	}
	if request.RequestedAmount > s.cfg.MaxLoanAmount {
		return fmt.Sprintf("Loan amount cannot exceed ₹%s", common.FormatINR(s.cfg.MaxLoanAmount))
	}
	if request.RequestedTenureMonths < s.cfg.MinTenureMonths {
		return fmt.Sprintf("Tenure must be at least %d months", s.cfg.MinTenureMonths)
	}
	if request.RequestedTenureMonths > s.cfg.MaxTenureMonths {
		return fmt.Sprintf("Tenure cannot exceed %d months", s.cfg.MaxTenureMonths)
	}
	if monthlyIncome <= 0 {
		return "Valid monthly income is required"
	}

	return ""
}

// calculateFoir is the Fixed Obligations to Income Ratio, clamped to 1.0
// when income is not positive.
func calculateFoir(existingEmi float64, newEmi float64, monthlyIncome float64) float64 {
	if monthlyIncome <= 0 {
		return 1.0
	}
	return roundTo3Decimals((existingEmi + newEmi) / monthlyIncome)
}

func (s *UnderwritingService) makeDecision(ctx context.Context, financials models.ApplicantFinancials, request models.LoanRequest, emi float64, foir float64) models.UnderwritingDecision {

	creditScore := financials.CreditScore

	// Risk band A: excellent score, healthy FOIR, full approval
	if creditScore >= s.cfg.ExcellentCreditScore && foir <= s.cfg.FoirThresholdA {
		explanation := fmt.Sprintf(
			"Approved! Excellent credit score (%d) and healthy FOIR (%s). You qualify for the full amount with Risk Band A rating.",
			creditScore, common.FormatPercent(foir))
		return s.approvalDecision(request, emi, creditScore, foir, consts.RiskBandA, explanation)
	}

	// Risk band B: good score, FOIR acceptable but possibly above the strict ceiling
	if creditScore >= s.cfg.GoodCreditScore && foir <= s.cfg.FoirThresholdB {
		if foir > s.cfg.FoirThresholdA {
			return s.adjustmentDecision(ctx, financials, request, creditScore, foir)
		}
		explanation := fmt.Sprintf(
			"Approved! Good credit score (%d) and acceptable FOIR (%s). Risk Band B rating.",
			creditScore, common.FormatPercent(foir))
		return s.approvalDecision(request, emi, creditScore, foir, consts.RiskBandB, explanation)
	}

	// Risk band C: enumerate every failed gate
	var reasons []string
	if creditScore < s.cfg.GoodCreditScore {
		reasons = append(reasons, fmt.Sprintf("credit score (%d) is below minimum requirement (%d)", creditScore, s.cfg.GoodCreditScore))
	}
	if foir > s.cfg.FoirThresholdB {
		reasons = append(reasons, fmt.Sprintf("FOIR (%s) exceeds maximum threshold (%s)", common.FormatPercent(foir), common.FormatPercent(s.cfg.FoirThresholdB)))
	}
	explanation := fmt.Sprintf(
		"Unfortunately, we cannot approve this loan because %s. Please improve your credit profile and try again.",
		strings.Join(reasons, " and "))

	return s.rejectionDecision(request, creditScore, foir, explanation)
}

// adjustmentDecision recomputes the largest principal whose EMI keeps the
// applicant at the strict FOIR ceiling. The reported FOIR stays the
// pre-adjustment value, matching how the offer is explained to the user.
func (s *UnderwritingService) adjustmentDecision(ctx context.Context, financials models.ApplicantFinancials, request models.LoanRequest, creditScore int, foir float64) models.UnderwritingDecision {

	maxAffordableEmi := financials.MonthlyIncome*s.cfg.FoirThresholdA - financials.ExistingEmi

	adjustedAmount, err := MaxPrincipalForEmi(maxAffordableEmi, s.cfg.InterestRate, request.RequestedTenureMonths)
	if err != nil {
		logger.Error(ctx, "Unexpected principal inversion failure for validated input: %v", err)
		return s.rejectionDecision(request, creditScore, foir, "We could not process this loan request.")
	}

	if adjustedAmount < s.cfg.MinLoanAmount {
		explanation := fmt.Sprintf(
			"Your current FOIR (%s) is too high. Maximum affordable loan amount (₹%s) is below minimum requirement.",
			common.FormatPercent(foir), common.FormatINR(adjustedAmount))
		return s.rejectionDecision(request, creditScore, foir, explanation)
	}

	adjustedEmi, err := CalculateEMI(adjustedAmount, s.cfg.InterestRate, request.RequestedTenureMonths)
	if err != nil {
		logger.Error(ctx, "Unexpected EMI failure for adjusted amount: %v", err)
		return s.rejectionDecision(request, creditScore, foir, "We could not process this loan request.")
	}

	explanation := fmt.Sprintf(
		"Approved with adjustment! Your credit score (%d) is good, but your FOIR (%s) is slightly high. We can approve ₹%s instead of ₹%s to maintain healthy FOIR. Risk Band: B.",
		creditScore, common.FormatPercent(foir), common.FormatINR(adjustedAmount), common.FormatINR(request.RequestedAmount))

	return models.UnderwritingDecision{
		Decision:        consts.DecisionAdjust,
		ApprovedAmount:  adjustedAmount,
		TenureMonths:    request.RequestedTenureMonths,
		Emi:             adjustedEmi,
		InterestRate:    s.cfg.InterestRate,
		CreditScore:     creditScore,
		Foir:            foir,
		RiskBand:        consts.RiskBandB,
		Explanation:     explanation,
		TotalPayable:    roundTo2Decimals(adjustedEmi * float64(request.RequestedTenureMonths)),
		ProcessingFee:   roundTo2Decimals(adjustedAmount * consts.ProcessingFeeRate),
		RequestedAmount: request.RequestedAmount,
	}
}

func (s *UnderwritingService) approvalDecision(request models.LoanRequest, emi float64, creditScore int, foir float64, riskBand string, explanation string) models.UnderwritingDecision {

	return models.UnderwritingDecision{
		Decision:        consts.DecisionApproved,
		ApprovedAmount:  request.RequestedAmount,
		TenureMonths:    request.RequestedTenureMonths,
		Emi:             emi,
		InterestRate:    s.cfg.InterestRate,
		CreditScore:     creditScore,
		Foir:            foir,
		RiskBand:        riskBand,
		Explanation:     explanation,
		TotalPayable:    roundTo2Decimals(emi * float64(request.RequestedTenureMonths)),
		ProcessingFee:   roundTo2Decimals(request.RequestedAmount * consts.ProcessingFeeRate),
		RequestedAmount: request.RequestedAmount,
	}
}

func (s *UnderwritingService) rejectionDecision(request models.LoanRequest, creditScore int, foir float64, explanation string) models.UnderwritingDecision {

	return models.UnderwritingDecision{
		Decision:        consts.DecisionRejected,
		ApprovedAmount:  0,
		TenureMonths:    request.RequestedTenureMonths,
		Emi:             0,
		InterestRate:    s.cfg.InterestRate,
		CreditScore:     creditScore,
		Foir:            foir,
		RiskBand:        consts.RiskBandC,
		Explanation:     explanation,
		TotalPayable:    0,
		ProcessingFee:   0,
		RequestedAmount: request.RequestedAmount,
	}
}
