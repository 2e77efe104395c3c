package services

import (
	"math"

	"github.com/yashdave182/FinAgent/internal/pkg/consts"
)

// roundTo2Decimals rounds a currency amount to minor-unit precision
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func roundTo3Decimals(value float64) float64 {
	return math.Round(value*1000) / 1000
}

// CalculateEMI computes the fixed monthly installment for a principal using
// the reducing balance method:
//
//	EMI = P * r * (1+r)^n / ((1+r)^n - 1)
//
// where r is the monthly rate (annual / 12 / 100) and n the tenure in months.
// Non-positive tenure and negative principal are caller bugs, not user input,
// and are rejected with a CustomError.
func CalculateEMI(principal float64, annualRatePercent float64, tenureMonths int) (float64, error) {
	if tenureMonths <= 0 {
		return 0, consts.ErrorInvalidTenure
	}
	if principal < 0 {
		return 0, consts.ErrorInvalidPrincipal
	}

	monthlyRate := annualRatePercent / 12 / 100

	var emi float64
	if monthlyRate == 0 {
		emi = principal / float64(tenureMonths)
	} else {
		n := float64(tenureMonths)
		factor := math.Pow(1+monthlyRate, n)
		emi = principal * monthlyRate * factor / (factor - 1)
	}

	return roundTo2Decimals(emi), nil
}

// MaxPrincipalForEmi inverts the amortization formula: the largest principal
// whose EMI at the given rate and tenure does not exceed maxEmi.
func MaxPrincipalForEmi(maxEmi float64, annualRatePercent float64, tenureMonths int) (float64, error) {
	if tenureMonths <= 0 {
		return 0, consts.ErrorInvalidTenure
	}

	monthlyRate := annualRatePercent / 12 / 100

	var principal float64
	if monthlyRate == 0 {
		principal = maxEmi * float64(tenureMonths)
	} else {
		n := float64(tenureMonths)
		factor := math.Pow(1+monthlyRate, n)
		principal = maxEmi * (factor - 1) / (monthlyRate * factor)
	}

	return roundTo2Decimals(principal), nil
}
