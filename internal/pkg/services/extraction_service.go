package services

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
	"github.com/yashdave182/FinAgent/internal/pkg/models"
)

type ExtractionService struct {
	amountRegex *regexp.Regexp
	tenureRegex *regexp.Regexp
}

func NewExtractionService() *ExtractionService {
	return &ExtractionService{
		amountRegex: regexp.MustCompile(consts.AmountRegexStr),
		tenureRegex: regexp.MustCompile(consts.TenureRegexStr),
	}
}

// ExtractLoanRequest parses free-form text for a requested amount and tenure.
// It only attempts extraction when the message carries one of the trigger
// tokens (rupee symbol, "lakh", "month", or any digit), and only succeeds
// when BOTH amount and tenure are found — a partial match is not a loan
// request and the caller must not underwrite on it.
func (s *ExtractionService) ExtractLoanRequest(text string) (*models.LoanRequest, bool) {

	lower := strings.ToLower(text)

	if !strings.Contains(text, consts.CurrencySymbol) &&
		!strings.Contains(lower, consts.LakhToken) &&
		!strings.Contains(lower, consts.MonthToken) &&
		!containsDigit(text) {
		return nil, false
	}

	// Thousands separators get in the way of digit-run capture
	cleaned := strings.ReplaceAll(text, ",", "")
	amountMatch := s.amountRegex.FindStringSubmatch(cleaned)
	tenureMatch := s.tenureRegex.FindStringSubmatch(lower)

	if amountMatch == nil || tenureMatch == nil {
		return nil, false
	}

	amount, err := strconv.ParseFloat(amountMatch[1], 64)
	if err != nil {
		return nil, false
	}
	tenure, err := strconv.Atoi(tenureMatch[1])
	if err != nil {
		return nil, false
	}

	// "5 lakh" shorthand: a bare small number alongside the lakh token
	if strings.Contains(lower, consts.LakhToken) && amount < 1000 {
		amount = amount * consts.LakhUnit
	}

	return &models.LoanRequest{
		RequestedAmount:       amount,
		RequestedTenureMonths: tenure,
	}, true
}

func containsDigit(text string) bool {
	for _, r := range text {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
