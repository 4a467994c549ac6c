package projection

import (
	"testing"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateYears_FlowsSumAndStocksSnapshot(t *testing.T) {
	fm, err := ProjectFinancialModel(baseModelAssumptions())
	require.NoError(t, err)

	y1 := fm.Years[0]
	assert.Equal(t, 1, y1.Year)
	assertDecimal(t, "1200000", y1.Revenue)
	assertDecimal(t, "720000", y1.GrossProfit)
	assertDecimal(t, "24000", y1.Depreciation)
	assertDecimal(t, "172800", y1.NetProfit)
	assertDecimal(t, "120000", y1.Capex)
	assertDecimal(t, "60", y1.GrossMarginPercent)
	assertDecimal(t, "14.4", y1.NetMarginPercent)

	last := fm.Months[11]
	assert.True(t, y1.ClosingCash.Equal(last.ClosingBalance))
	assert.True(t, y1.TotalAssets.Equal(last.TotalAssets))
	assert.True(t, y1.RetainedEarnings.Equal(last.RetainedEarnings))
	assert.True(t, y1.OpeningCash.Equal(fm.Seed.Cash))
	assert.True(t, fm.Years[1].OpeningCash.Equal(y1.ClosingCash), "year 2 opens where year 1 closed")

	for _, y := range fm.Years {
		assert.True(t, y.ClosingCash.Equal(y.OpeningCash.Add(y.NetCashFlow)), "year %d cash bridge", y.Year)
		assert.True(t, y.TotalAssets.Equal(y.TotalLiabilities.Add(y.TotalEquity)), "year %d identity", y.Year)
	}
}

func TestAggregateYears_MarginsComeFromSummedFlows(t *testing.T) {
	months := make([]domain.ModelMonth, domain.MonthsPerYear)
	for i := range months {
		months[i] = domain.ModelMonth{Month: i + 1, Revenue: dec("0"), GrossProfit: dec("0"), NetProfit: dec("0")}
	}
	// One large month at 10% margin and one small month at 90% margin.
	months[0].Revenue, months[0].GrossProfit, months[0].NetProfit = dec("900"), dec("90"), dec("90")
	months[1].Revenue, months[1].GrossProfit, months[1].NetProfit = dec("100"), dec("90"), dec("90")

	years := AggregateYears(months)
	require.Len(t, years, 1)
	assertDecimal(t, "18", years[0].GrossMarginPercent, "180 of 1000, not the 50% average of the monthly ratios")
}

func TestAggregateYears_ZeroRevenueHasZeroMargin(t *testing.T) {
	a := baseModelAssumptions()
	a.StartingRevenue = dec("0")

	fm, err := ProjectFinancialModel(a)
	require.NoError(t, err)

	for _, y := range fm.Years {
		assertDecimal(t, "0", y.GrossMarginPercent)
		assertDecimal(t, "0", y.NetMarginPercent)
	}
}

func TestAggregateYears_IgnoresPartialBlock(t *testing.T) {
	months := make([]domain.ModelMonth, 15)
	assert.Len(t, AggregateYears(months), 1)
	assert.Empty(t, AggregateYears(nil))
}
