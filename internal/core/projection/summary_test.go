package projection

import (
	"testing"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	months := []domain.CashPosition{
		{NetCashFlow: dec("-10"), ClosingBalance: dec("90"), Receivables: dec("40"), Payables: dec("15")},
		{NetCashFlow: dec("30"), ClosingBalance: dec("120"), Receivables: dec("50"), Payables: dec("20")},
		{NetCashFlow: dec("-130"), ClosingBalance: dec("-10"), Receivables: dec("10"), Payables: dec("20")},
	}

	s := Summarize(dec("100"), dec("45"), dec("60"), months)

	assertDecimal(t, "120", s.PeakBalance)
	assertDecimal(t, "-10", s.TroughBalance)
	assertDecimal(t, "-10", s.EndingBalance)
	assertDecimal(t, "-110", s.TotalNetCashFlow)
	assert.Equal(t, 2, s.NegativeFlowMonths)
	assert.Equal(t, 1, s.NegativeBalanceMonths)
	assertDecimal(t, "-15", s.CashConversionCycleDays, "collecting before paying is negative")
	assertDecimal(t, "25", s.WorkingCapitalTiedUp, "taken from the first month")
}

func TestSummarize_OpeningBalanceCountsForPeakAndTrough(t *testing.T) {
	falling := []domain.CashPosition{
		{NetCashFlow: dec("-5"), ClosingBalance: dec("95")},
		{NetCashFlow: dec("-5"), ClosingBalance: dec("90")},
	}
	s := Summarize(dec("100"), dec("0"), dec("0"), falling)
	assertDecimal(t, "100", s.PeakBalance)
	assertDecimal(t, "90", s.TroughBalance)

	rising := []domain.CashPosition{
		{NetCashFlow: dec("5"), ClosingBalance: dec("5")},
	}
	s = Summarize(dec("0"), dec("0"), dec("0"), rising)
	assertDecimal(t, "0", s.TroughBalance)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(dec("42"), dec("30"), dec("30"), nil)
	assertDecimal(t, "42", s.PeakBalance)
	assertDecimal(t, "42", s.EndingBalance)
	assertDecimal(t, "0", s.WorkingCapitalTiedUp)
}
