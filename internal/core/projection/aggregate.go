package projection

import (
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// AggregateYears rolls every consecutive block of twelve months into one ModelYear.
// A trailing partial block is ignored.
func AggregateYears(months []domain.ModelMonth) []domain.ModelYear {
	years := make([]domain.ModelYear, 0, len(months)/domain.MonthsPerYear)
	for start := 0; start+domain.MonthsPerYear <= len(months); start += domain.MonthsPerYear {
		years = append(years, aggregateYear(start/domain.MonthsPerYear+1, months[start:start+domain.MonthsPerYear]))
	}
	return years
}

func aggregateYear(year int, block []domain.ModelMonth) domain.ModelYear {
	y := domain.ModelYear{Year: year}
	for _, m := range block {
		y.Revenue = y.Revenue.Add(m.Revenue)
		y.COGS = y.COGS.Add(m.COGS)
		y.GrossProfit = y.GrossProfit.Add(m.GrossProfit)
		y.FixedOpex = y.FixedOpex.Add(m.FixedOpex)
		y.VariableOpex = y.VariableOpex.Add(m.VariableOpex)
		y.EBITDA = y.EBITDA.Add(m.EBITDA)
		y.Depreciation = y.Depreciation.Add(m.Depreciation)
		y.PreTaxProfit = y.PreTaxProfit.Add(m.PreTaxProfit)
		y.Tax = y.Tax.Add(m.Tax)
		y.NetProfit = y.NetProfit.Add(m.NetProfit)
		y.Capex = y.Capex.Add(m.Capex)
		y.OperatingCashFlow = y.OperatingCashFlow.Add(m.OperatingCashFlow)
		y.InvestingCashFlow = y.InvestingCashFlow.Add(m.InvestingCashFlow)
		y.CashInflow = y.CashInflow.Add(m.CashInflow)
		y.CashOutflow = y.CashOutflow.Add(m.CashOutflow)
		y.NetCashFlow = y.NetCashFlow.Add(m.NetCashFlow)
	}

	first, last := block[0], block[len(block)-1]
	y.OpeningCash = first.OpeningBalance
	y.ClosingCash = last.ClosingBalance
	y.Receivables = last.Receivables
	y.Payables = last.Payables
	y.CumulativeCapex = last.CumulativeCapex
	y.AccumulatedDepreciation = last.AccumulatedDepreciation
	y.NetFixedAssets = last.NetFixedAssets
	y.RetainedEarnings = last.RetainedEarnings
	y.TotalAssets = last.TotalAssets
	y.TotalLiabilities = last.TotalLiabilities
	y.TotalEquity = last.TotalEquity

	y.GrossMarginPercent = marginPercent(y.GrossProfit, y.Revenue)
	y.NetMarginPercent = marginPercent(y.NetProfit, y.Revenue)
	return y
}

// marginPercent is part/revenue as a whole-number percentage, zero without revenue.
func marginPercent(part, revenue decimal.Decimal) decimal.Decimal {
	if revenue.IsZero() {
		return decimal.Zero
	}
	return part.Mul(hundred).Div(revenue)
}
