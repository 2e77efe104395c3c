package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LoanApplication struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	LoanId                string             `bson:"loanId" json:"loan_id"`
	UserId                string             `bson:"userId" json:"user_id"`
	FullName              string             `bson:"fullName" json:"full_name"`
	Email                 string             `bson:"email" json:"email"`
	RequestedAmount       float64            `bson:"requestedAmount" json:"requested_amount"`
	RequestedTenureMonths int                `bson:"requestedTenureMonths" json:"requested_tenure_months"`
	ApprovedAmount        float64            `bson:"approvedAmount" json:"approved_amount"`
	TenureMonths          int                `bson:"tenureMonths" json:"tenure_months"`
	Emi                   float64            `bson:"emi" json:"emi"`
	InterestRate          float64            `bson:"interestRate" json:"interest_rate"`
	CreditScore           int                `bson:"creditScore" json:"credit_score"`
	Foir                  float64            `bson:"foir" json:"foir"`
	Decision              string             `bson:"decision" json:"decision"`
	RiskBand              string             `bson:"riskBand" json:"risk_band"`
	Explanation           string             `bson:"explanation" json:"explanation"`
	TotalPayable          float64            `bson:"totalPayable" json:"total_payable"`
	ProcessingFee         float64            `bson:"processingFee" json:"processing_fee"`
	SanctionDocumentRef   string             `bson:"sanctionDocumentRef,omitempty" json:"sanction_document_ref,omitempty"`
	CreatedAt             time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt             time.Time          `bson:"updatedAt" json:"updated_at"`
}
