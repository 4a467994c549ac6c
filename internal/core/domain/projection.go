package domain

import "github.com/shopspring/decimal"

// CashPosition holds the cash and working-capital columns every projected month carries.
type CashPosition struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CashInflow     decimal.Decimal `json:"cashInflow"`
	CashOutflow    decimal.Decimal `json:"cashOutflow"`
	NetCashFlow    decimal.Decimal `json:"netCashFlow"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Receivables    decimal.Decimal `json:"receivables"`
	Payables       decimal.Decimal `json:"payables"`
}

// CashFlowMonth is one month of the cash-timing model.
type CashFlowMonth struct {
	Month            int             `json:"month"`
	Label            string          `json:"label"`
	RecurringRevenue decimal.Decimal `json:"recurringRevenue"`
	OneTimeIncome    decimal.Decimal `json:"oneTimeIncome"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	FixedCosts       decimal.Decimal `json:"fixedCosts"`
	VariableCosts    decimal.Decimal `json:"variableCosts"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	CashPosition
}

// ModelMonth is one month of the integrated financial model.
type ModelMonth struct {
	Month int    `json:"month"`
	Label string `json:"label"`

	// Income statement
	Revenue      decimal.Decimal `json:"revenue"`
	COGS         decimal.Decimal `json:"cogs"`
	GrossProfit  decimal.Decimal `json:"grossProfit"`
	FixedOpex    decimal.Decimal `json:"fixedOpex"`
	VariableOpex decimal.Decimal `json:"variableOpex"`
	EBITDA       decimal.Decimal `json:"ebitda"`
	Depreciation decimal.Decimal `json:"depreciation"`
	PreTaxProfit decimal.Decimal `json:"preTaxProfit"`
	Tax          decimal.Decimal `json:"tax"`
	NetProfit    decimal.Decimal `json:"netProfit"`

	// Cash flow statement
	Capex             decimal.Decimal `json:"capex"`
	OperatingCashFlow decimal.Decimal `json:"operatingCashFlow"`
	InvestingCashFlow decimal.Decimal `json:"investingCashFlow"`
	CashPosition

	// Balance sheet
	CumulativeCapex         decimal.Decimal `json:"cumulativeCapex"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetFixedAssets          decimal.Decimal `json:"netFixedAssets"`
	RetainedEarnings        decimal.Decimal `json:"retainedEarnings"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`
	TotalLiabilities        decimal.Decimal `json:"totalLiabilities"`
	TotalEquity             decimal.Decimal `json:"totalEquity"`
}

// ModelSeed is the Year-0 balance sheet, the state immediately before month 1.
type ModelSeed struct {
	Cash             decimal.Decimal `json:"cash"`
	Receivables      decimal.Decimal `json:"receivables"`
	Payables         decimal.Decimal `json:"payables"`
	NetFixedAssets   decimal.Decimal `json:"netFixedAssets"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
}

// ModelYear rolls up twelve ModelMonths. Flows are summed, stocks are taken
// from the last month of the block.
type ModelYear struct {
	Year int `json:"year"`

	// Flows
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	FixedOpex         decimal.Decimal `json:"fixedOpex"`
	VariableOpex      decimal.Decimal `json:"variableOpex"`
	EBITDA            decimal.Decimal `json:"ebitda"`
	Depreciation      decimal.Decimal `json:"depreciation"`
	PreTaxProfit      decimal.Decimal `json:"preTaxProfit"`
	Tax               decimal.Decimal `json:"tax"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	Capex             decimal.Decimal `json:"capex"`
	OperatingCashFlow decimal.Decimal `json:"operatingCashFlow"`
	InvestingCashFlow decimal.Decimal `json:"investingCashFlow"`
	CashInflow        decimal.Decimal `json:"cashInflow"`
	CashOutflow       decimal.Decimal `json:"cashOutflow"`
	NetCashFlow       decimal.Decimal `json:"netCashFlow"`

	// Stocks
	OpeningCash             decimal.Decimal `json:"openingCash"`
	ClosingCash             decimal.Decimal `json:"closingCash"`
	Receivables             decimal.Decimal `json:"receivables"`
	Payables                decimal.Decimal `json:"payables"`
	CumulativeCapex         decimal.Decimal `json:"cumulativeCapex"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	NetFixedAssets          decimal.Decimal `json:"netFixedAssets"`
	RetainedEarnings        decimal.Decimal `json:"retainedEarnings"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`
	TotalLiabilities        decimal.Decimal `json:"totalLiabilities"`
	TotalEquity             decimal.Decimal `json:"totalEquity"`

	// Ratios recomputed from the summed flows
	GrossMarginPercent decimal.Decimal `json:"grossMarginPercent"`
	NetMarginPercent   decimal.Decimal `json:"netMarginPercent"`
}

// ProjectionSummary holds scalar insights derived from a finished projection.
type ProjectionSummary struct {
	PeakBalance             decimal.Decimal `json:"peakBalance"`
	TroughBalance           decimal.Decimal `json:"troughBalance"`
	EndingBalance           decimal.Decimal `json:"endingBalance"`
	TotalNetCashFlow        decimal.Decimal `json:"totalNetCashFlow"`
	NegativeFlowMonths      int             `json:"negativeFlowMonths"`
	NegativeBalanceMonths   int             `json:"negativeBalanceMonths"`
	CashConversionCycleDays decimal.Decimal `json:"cashConversionCycleDays"`
	WorkingCapitalTiedUp    decimal.Decimal `json:"workingCapitalTiedUp"`
}

// CashFlowProjection is the complete output of the cash-timing model.
type CashFlowProjection struct {
	Assumptions CashFlowAssumptions `json:"assumptions"`
	Months      []CashFlowMonth     `json:"months"`
	Summary     ProjectionSummary   `json:"summary"`
}

// FinancialModel is the complete output of the integrated financial model.
type FinancialModel struct {
	Assumptions ModelAssumptions  `json:"assumptions"`
	Seed        ModelSeed         `json:"seed"`
	Months      []ModelMonth      `json:"months"`
	Years       []ModelYear       `json:"years"`
	Summary     ProjectionSummary `json:"summary"`
}

// SensitivityResult is the outcome of one what-if variant.
type SensitivityResult struct {
	Variant SensitivityVariant `json:"variant"`
	Summary ProjectionSummary  `json:"summary"`
}
