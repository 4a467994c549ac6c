package domain

import "github.com/shopspring/decimal"

const (
	// MonthsPerYear is the length of one annual block.
	MonthsPerYear = 12
	// CashFlowMonths is the horizon of the cash-timing model.
	CashFlowMonths = 12
	// ModelMonths is the horizon of the integrated financial model.
	ModelMonths = 36
)

// CashFlowAssumptions are the inputs of the 12-month cash-timing model.
// Percentages are whole numbers (20 means 20%).
type CashFlowAssumptions struct {
	MonthlyRevenue      decimal.Decimal   `json:"monthlyRevenue" validate:"gte=0"`
	FixedCosts          decimal.Decimal   `json:"fixedCosts" validate:"gte=0"`
	VariableCostPercent decimal.Decimal   `json:"variableCostPercent" validate:"gte=0"`
	StartingBalance     decimal.Decimal   `json:"startingBalance"`
	DSO                 decimal.Decimal   `json:"dso" validate:"gte=0"`
	DPO                 decimal.Decimal   `json:"dpo" validate:"gte=0"`
	OneTimeIncome       []decimal.Decimal `json:"oneTimeIncome" validate:"len=12,dive,gte=0"`
	// StartMonth is the calendar month (1-12) of the first period; 0 means January.
	// It only affects labels.
	StartMonth int `json:"startMonth" validate:"min=0,max=12"`
}

// OneTimeIncomeAt returns the one-time income of the 1-based month, zero when absent.
func (a CashFlowAssumptions) OneTimeIncomeAt(month int) decimal.Decimal {
	if month < 1 || month > len(a.OneTimeIncome) {
		return decimal.Zero
	}
	return a.OneTimeIncome[month-1]
}

// ModelAssumptions are the inputs of the 36-month integrated financial model.
// Percentages are whole numbers (20 means 20%).
type ModelAssumptions struct {
	StartingRevenue     decimal.Decimal `json:"startingRevenue" validate:"gte=0"`
	GrowthRatePercent   decimal.Decimal `json:"growthRatePercent" validate:"gt=-100"` // monthly, compounding
	COGSPercent         decimal.Decimal `json:"cogsPercent" validate:"gte=0"`
	FixedOpex           decimal.Decimal `json:"fixedOpex" validate:"gte=0"`
	VariableOpexPercent decimal.Decimal `json:"variableOpexPercent" validate:"gte=0"`
	StartingCash        decimal.Decimal `json:"startingCash"`
	DSO                 decimal.Decimal `json:"dso" validate:"gte=0"`
	DPO                 decimal.Decimal `json:"dpo" validate:"gte=0"`
	TaxRatePercent      decimal.Decimal `json:"taxRatePercent" validate:"gte=0,lte=100"`
	AnnualCapex         decimal.Decimal `json:"annualCapex" validate:"gte=0"`
	DepreciationYears   decimal.Decimal `json:"depreciationYears" validate:"gte=0"`
	StartMonth          int             `json:"startMonth" validate:"min=0,max=12"`
}

// SensitivityVariant describes one what-if adjustment applied to input assumptions.
type SensitivityVariant struct {
	Label                string          `json:"label"`
	RevenueChangePercent decimal.Decimal `json:"revenueChangePercent"`
	CostChangePercent    decimal.Decimal `json:"costChangePercent"`
}

// BaseCaseLabel labels the unadjusted run that leads every sensitivity result list.
const BaseCaseLabel = "base"
