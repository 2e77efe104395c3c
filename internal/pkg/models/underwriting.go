package models

// ApplicantFinancials is the per-evaluation snapshot of the applicant's
// financial position. The engine never mutates it.
type ApplicantFinancials struct {
	MonthlyIncome float64 `json:"monthly_income"`
	ExistingEmi   float64 `json:"existing_emi"`
	CreditScore   int     `json:"credit_score"`
}

// LoanRequest is the transient input extracted from a chat message.
type LoanRequest struct {
	RequestedAmount       float64 `json:"requested_amount"`
	RequestedTenureMonths int     `json:"requested_tenure_months"`
}

// UnderwritingDecision is the tagged result of a single evaluation.
// Decision is one of APPROVED, ADJUST, REJECTED; RiskBand one of A, B, C.
type UnderwritingDecision struct {
	Decision        string  `json:"decision"`
	ApprovedAmount  float64 `json:"approved_amount"`
	TenureMonths    int     `json:"tenure_months"`
	Emi             float64 `json:"emi"`
	InterestRate    float64 `json:"interest_rate"`
	CreditScore     int     `json:"credit_score"`
	Foir            float64 `json:"foir"`
	RiskBand        string  `json:"risk_band"`
	Explanation     string  `json:"explanation"`
	TotalPayable    float64 `json:"total_payable"`
	ProcessingFee   float64 `json:"processing_fee"`
	RequestedAmount float64 `json:"requested_amount"`
}
