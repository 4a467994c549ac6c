package projection

import (
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Summarize derives the scalar insights of a finished month sequence. opening is the
// balance before month 1 and takes part in the peak and trough.
func Summarize(opening, dso, dpo decimal.Decimal, months []domain.CashPosition) domain.ProjectionSummary {
	s := domain.ProjectionSummary{
		PeakBalance:             opening,
		TroughBalance:           opening,
		EndingBalance:           opening,
		TotalNetCashFlow:        decimal.Zero,
		CashConversionCycleDays: dso.Sub(dpo),
		WorkingCapitalTiedUp:    decimal.Zero,
	}
	for _, m := range months {
		s.PeakBalance = decimal.Max(s.PeakBalance, m.ClosingBalance)
		s.TroughBalance = decimal.Min(s.TroughBalance, m.ClosingBalance)
		s.TotalNetCashFlow = s.TotalNetCashFlow.Add(m.NetCashFlow)
		if m.NetCashFlow.IsNegative() {
			s.NegativeFlowMonths++
		}
		if m.ClosingBalance.IsNegative() {
			s.NegativeBalanceMonths++
		}
	}
	if len(months) > 0 {
		s.EndingBalance = months[len(months)-1].ClosingBalance
		s.WorkingCapitalTiedUp = months[0].Receivables.Sub(months[0].Payables)
	}
	return s
}
