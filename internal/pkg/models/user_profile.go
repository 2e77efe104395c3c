package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserProfile struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserId        string             `bson:"userId" json:"user_id"`
	FullName      string             `bson:"fullName" json:"full_name"`
	Email         string             `bson:"email" json:"email"`
	MonthlyIncome float64            `bson:"monthlyIncome" json:"monthly_income"`
	ExistingEmi   float64            `bson:"existingEmi" json:"existing_emi"`
	CreditScore   int                `bson:"creditScore" json:"credit_score"`
	Segment       string             `bson:"segment" json:"segment"`
	CreatedAt     time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updated_at"`
}

// Financials returns the immutable snapshot the underwriting engine consumes.
func (p *UserProfile) Financials() ApplicantFinancials {
	return ApplicantFinancials{
		MonthlyIncome: p.MonthlyIncome,
		ExistingEmi:   p.ExistingEmi,
		CreditScore:   p.CreditScore,
	}
}
