package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SanctionDocument struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ReferenceNumber string             `bson:"referenceNumber" json:"reference_number"`
	LoanId          string             `bson:"loanId" json:"loan_id"`
	BorrowerName    string             `bson:"borrowerName" json:"borrower_name"`
	ApprovedAmount  float64            `bson:"approvedAmount" json:"approved_amount"`
	TenureMonths    int                `bson:"tenureMonths" json:"tenure_months"`
	Emi             float64            `bson:"emi" json:"emi"`
	InterestRate    float64            `bson:"interestRate" json:"interest_rate"`
	RiskBand        string             `bson:"riskBand" json:"risk_band"`
	Body            string             `bson:"body" json:"body"`
	IssuedAt        time.Time          `bson:"issuedAt" json:"issued_at"`
	ValidUntil      time.Time          `bson:"validUntil" json:"valid_until"`
}
