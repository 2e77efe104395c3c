package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yashdave182/FinAgent/internal/pkg/common"
	"github.com/yashdave182/FinAgent/internal/pkg/logger"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

const sanctionDateFormat = "January 02, 2006"

var sanctionTerms = []string{
	"This sanction is valid for %d days from the date of issue.",
	"The loan is subject to verification of all documents submitted.",
	"Processing fee is non-refundable and payable upfront.",
	"EMI will be deducted on the same date every month.",
	"Prepayment charges may apply as per loan agreement.",
	"Interest rate is fixed for the entire tenure of the loan.",
	"This is a system-generated sanction letter and is valid without signature.",
}

// SanctionService renders and persists sanction letters for created
// applications. The letter body is plain text; downstream channels do their
// own presentation.
type SanctionService struct {
	documentRepo SanctionDocumentStoreInterface
	validityDays int
}

func NewSanctionService(documentRepo SanctionDocumentStoreInterface, validityDays int) *SanctionService {
	return &SanctionService{
		documentRepo: documentRepo,
		validityDays: validityDays,
	}
}

func (s *SanctionService) IssueSanctionDocument(ctx context.Context, application models.LoanApplication) (*models.SanctionDocument, error) {

	issuedAt := time.Now().UTC()
	validUntil := issuedAt.AddDate(0, 0, s.validityDays)

	document := models.SanctionDocument{
		ReferenceNumber: "SNC-" + strings.ToUpper(uuid.NewString()[:8]),
		LoanId:          application.LoanId,
		BorrowerName:    application.FullName,
		ApprovedAmount:  application.ApprovedAmount,
		TenureMonths:    application.TenureMonths,
		Emi:             application.Emi,
		InterestRate:    application.InterestRate,
		RiskBand:        application.RiskBand,
		IssuedAt:        issuedAt,
		ValidUntil:      validUntil,
	}
	document.Body = s.renderLetter(application, document)

	if err := s.documentRepo.CreateSanctionDocument(ctx, document); err != nil {
		logger.Error(ctx, "SanctionService : error storing document for loan %v: %v", application.LoanId, err)
		return nil, err
	}

	logger.Info(ctx, "SanctionService : issued document %v for loan %v", document.ReferenceNumber, application.LoanId)

	return &document, nil
}

func (s *SanctionService) renderLetter(application models.LoanApplication, document models.SanctionDocument) string {

	var b strings.Builder

	b.WriteString("FinAgent\n")
	b.WriteString("Personal Loan Sanction Letter\n\n")

	fmt.Fprintf(&b, "Sanction Reference No: %s\n", document.ReferenceNumber)
	fmt.Fprintf(&b, "Sanction Date: %s\n", document.IssuedAt.Format(sanctionDateFormat))
	fmt.Fprintf(&b, "Validity Date: %s (%d days)\n\n", document.ValidUntil.Format(sanctionDateFormat), s.validityDays)

	b.WriteString("Applicant Details\n")
	fmt.Fprintf(&b, "Applicant Name: %s\n", application.FullName)
	fmt.Fprintf(&b, "Customer ID: %s\n\n", application.UserId)

	b.WriteString("Loan Sanction Details\n")
	fmt.Fprintf(&b, "Sanctioned Amount: ₹ %s\n", common.FormatINR(application.ApprovedAmount))
	fmt.Fprintf(&b, "Tenure: %d months (%d years %d months)\n", application.TenureMonths, application.TenureMonths/12, application.TenureMonths%12)
	fmt.Fprintf(&b, "Interest Rate: %v%% per annum\n", application.InterestRate)
	fmt.Fprintf(&b, "Monthly EMI: ₹ %s\n", common.FormatINR(application.Emi))
	fmt.Fprintf(&b, "Total Amount Payable: ₹ %s\n", common.FormatINR(application.TotalPayable))
	fmt.Fprintf(&b, "Processing Fee (2%%): ₹ %s\n", common.FormatINR(application.ProcessingFee))
	fmt.Fprintf(&b, "Risk Band: %s\n\n", application.RiskBand)

	b.WriteString("Terms & Conditions\n")
	for i, term := range sanctionTerms {
		if strings.Contains(term, "%d") {
			term = fmt.Sprintf(term, s.validityDays)
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, term)
	}

	b.WriteString("\nThis is a system-generated document and does not require a signature.\n")
	b.WriteString("For queries, contact us at support@finagent.com | +91-1800-XXX-XXXX\n")

	return b.String()
}
