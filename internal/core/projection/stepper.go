package projection

import (
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// cashFlowAccrual is the accrual-basis economics of one cash-timing month.
type cashFlowAccrual struct {
	Month     int
	Recurring decimal.Decimal
	OneTime   decimal.Decimal
	Revenue   decimal.Decimal
	Fixed     decimal.Decimal
	Variable  decimal.Decimal
	Expenses  decimal.Decimal
}

// stepCashFlowMonth computes month i (1-based). Revenue is flat recurring revenue
// plus that month's one-time income, and variable cost is a share of that total.
func stepCashFlowMonth(a domain.CashFlowAssumptions, i int) cashFlowAccrual {
	oneTime := a.OneTimeIncomeAt(i)
	revenue := a.MonthlyRevenue.Add(oneTime)
	variable := revenue.Mul(accounting.Percent(a.VariableCostPercent))
	return cashFlowAccrual{
		Month:     i,
		Recurring: a.MonthlyRevenue,
		OneTime:   oneTime,
		Revenue:   revenue,
		Fixed:     a.FixedCosts,
		Variable:  variable,
		Expenses:  a.FixedCosts.Add(variable),
	}
}

// modelAccrual is the accrual-basis economics of one integrated-model month,
// including the capital-asset state carried forward from the previous month.
type modelAccrual struct {
	Month        int
	Revenue      decimal.Decimal
	COGS         decimal.Decimal
	GrossProfit  decimal.Decimal
	FixedOpex    decimal.Decimal
	VariableOpex decimal.Decimal
	EBITDA       decimal.Decimal
	Depreciation decimal.Decimal
	PreTaxProfit decimal.Decimal
	Tax          decimal.Decimal
	NetProfit    decimal.Decimal

	Capex                   decimal.Decimal
	CumulativeCapex         decimal.Decimal
	AccumulatedDepreciation decimal.Decimal
}

// Purchases is the spend that flows through payables.
func (m modelAccrual) Purchases() decimal.Decimal {
	return m.COGS.Add(m.FixedOpex).Add(m.VariableOpex)
}

// capexMonth reports whether month i opens a 12-month block (1, 13, 25, ...).
func capexMonth(i int) bool {
	return (i-1)%domain.MonthsPerYear == 0
}

// stepModelMonth computes month i (1-based) from the previous month's state.
// prev is the zero value for month 1.
func stepModelMonth(a domain.ModelAssumptions, i int, prev modelAccrual) modelAccrual {
	revenue := a.StartingRevenue
	if i > 1 {
		growth := decimal.NewFromInt(1).Add(accounting.Percent(a.GrowthRatePercent))
		revenue = prev.Revenue.Mul(growth)
	}

	cogs := revenue.Mul(accounting.Percent(a.COGSPercent))
	grossProfit := revenue.Sub(cogs)
	variable := revenue.Mul(accounting.Percent(a.VariableOpexPercent))
	ebitda := grossProfit.Sub(a.FixedOpex).Sub(variable)

	capex := decimal.Zero
	if capexMonth(i) {
		capex = a.AnnualCapex
	}
	cumulativeCapex := prev.CumulativeCapex.Add(capex)

	// Cumulative capex over the whole life, with no per-tranche schedule: a life
	// under two years drives net fixed assets negative inside the horizon.
	depreciation := decimal.Zero
	if a.DepreciationYears.IsPositive() {
		lifeMonths := a.DepreciationYears.Mul(decimal.NewFromInt(domain.MonthsPerYear))
		depreciation = cumulativeCapex.Div(lifeMonths)
	}

	preTax := ebitda.Sub(depreciation)
	tax := decimal.Max(preTax, decimal.Zero).Mul(accounting.Percent(a.TaxRatePercent))

	return modelAccrual{
		Month:                   i,
		Revenue:                 revenue,
		COGS:                    cogs,
		GrossProfit:             grossProfit,
		FixedOpex:               a.FixedOpex,
		VariableOpex:            variable,
		EBITDA:                  ebitda,
		Depreciation:            depreciation,
		PreTaxProfit:            preTax,
		Tax:                     tax,
		NetProfit:               preTax.Sub(tax),
		Capex:                   capex,
		CumulativeCapex:         cumulativeCapex,
		AccumulatedDepreciation: prev.AccumulatedDepreciation.Add(depreciation),
	}
}

// modelAccruals folds stepModelMonth over the horizon.
func modelAccruals(a domain.ModelAssumptions, months int) []modelAccrual {
	out := make([]modelAccrual, months)
	prev := modelAccrual{}
	for i := 1; i <= months; i++ {
		out[i-1] = stepModelMonth(a, i, prev)
		prev = out[i-1]
	}
	return out
}
