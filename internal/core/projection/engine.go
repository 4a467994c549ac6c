// Package projection is the multi-period projection engine: a 12-month cash-timing
// model and a 36-month integrated financial model. Every function is pure; the same
// assumptions always produce the same rows.
package projection

import (
	"fmt"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
)

// ProjectCashFlow validates the assumptions and runs the 12-month cash-timing model.
func ProjectCashFlow(a domain.CashFlowAssumptions) (*domain.CashFlowProjection, error) {
	if err := ValidateCashFlow(a); err != nil {
		return nil, err
	}

	accruals := make([]cashFlowAccrual, domain.CashFlowMonths)
	for i := range accruals {
		accruals[i] = stepCashFlowMonth(a, i+1)
	}

	months, err := accumulateCashFlow(a, accruals)
	if err != nil {
		return nil, fmt.Errorf("cash flow projection: %w", err)
	}

	positions := make([]domain.CashPosition, len(months))
	for i, m := range months {
		positions[i] = m.CashPosition
	}

	return &domain.CashFlowProjection{
		Assumptions: a,
		Months:      months,
		Summary:     Summarize(a.StartingBalance, a.DSO, a.DPO, positions),
	}, nil
}

// ProjectFinancialModel validates the assumptions and runs the 36-month integrated model.
func ProjectFinancialModel(a domain.ModelAssumptions) (*domain.FinancialModel, error) {
	if err := ValidateModel(a); err != nil {
		return nil, err
	}

	seed, err := seedBalanceSheet(a)
	if err != nil {
		return nil, fmt.Errorf("financial model: %w", err)
	}

	months, err := accumulateModel(a, seed, modelAccruals(a, domain.ModelMonths))
	if err != nil {
		return nil, fmt.Errorf("financial model: %w", err)
	}

	positions := make([]domain.CashPosition, len(months))
	for i, m := range months {
		positions[i] = m.CashPosition
	}

	return &domain.FinancialModel{
		Assumptions: a,
		Seed:        seed,
		Months:      months,
		Years:       AggregateYears(months),
		Summary:     Summarize(seed.Cash, a.DSO, a.DPO, positions),
	}, nil
}
