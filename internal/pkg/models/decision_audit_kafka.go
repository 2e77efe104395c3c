package models

import "time"

// DecisionAuditEvent is the record produced to the underwriting audit topic
// for every evaluation and every sanction issuance.
type DecisionAuditEvent struct {
	EventType      string    `json:"eventType"`
	GUID           string    `json:"guid"`
	UserId         string    `json:"userId"`
	SessionId      string    `json:"sessionId"`
	Decision       string    `json:"decision"`
	RiskBand       string    `json:"riskBand"`
	RequestedAmt   float64   `json:"requestedAmount"`
	ApprovedAmt    float64   `json:"approvedAmount"`
	TenureMonths   int       `json:"tenureMonths"`
	Emi            float64   `json:"emi"`
	Foir           float64   `json:"foir"`
	CreditScore    int       `json:"creditScore"`
	LoanId         string    `json:"loanId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	PublishedBy    string    `json:"publishedBy"`
	SchemaRevision int       `json:"schemaRevision"`
}
