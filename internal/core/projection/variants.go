package projection

import (
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// changeFactor turns a whole-number change percentage into a multiplier, never below zero.
func changeFactor(changePercent decimal.Decimal) decimal.Decimal {
	f := decimal.NewFromInt(1).Add(accounting.Percent(changePercent))
	return decimal.Max(f, decimal.Zero)
}

// ApplyCashFlowVariant returns a copy of a with revenue-side inputs scaled by the
// variant's revenue change and cost-side inputs by its cost change.
func ApplyCashFlowVariant(a domain.CashFlowAssumptions, v domain.SensitivityVariant) domain.CashFlowAssumptions {
	rf, cf := changeFactor(v.RevenueChangePercent), changeFactor(v.CostChangePercent)

	out := a
	out.MonthlyRevenue = a.MonthlyRevenue.Mul(rf)
	out.OneTimeIncome = make([]decimal.Decimal, len(a.OneTimeIncome))
	for i, amt := range a.OneTimeIncome {
		out.OneTimeIncome[i] = amt.Mul(rf)
	}
	out.FixedCosts = a.FixedCosts.Mul(cf)
	out.VariableCostPercent = a.VariableCostPercent.Mul(cf)
	return out
}

// ApplyModelVariant is ApplyCashFlowVariant for the financial model. Capex is an
// investment decision and is left untouched.
func ApplyModelVariant(a domain.ModelAssumptions, v domain.SensitivityVariant) domain.ModelAssumptions {
	rf, cf := changeFactor(v.RevenueChangePercent), changeFactor(v.CostChangePercent)

	out := a
	out.StartingRevenue = a.StartingRevenue.Mul(rf)
	out.FixedOpex = a.FixedOpex.Mul(cf)
	out.COGSPercent = a.COGSPercent.Mul(cf)
	out.VariableOpexPercent = a.VariableOpexPercent.Mul(cf)
	return out
}
