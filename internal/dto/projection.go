package dto

import (
	"fmt"
	"strings"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils"
	"github.com/shopspring/decimal"
)

// MaxSensitivityVariants caps the what-if variants accepted in one request.
const MaxSensitivityVariants = 10

// LenientAmount is a form-entered amount. Anything that is not a number
// (null, "", "abc", objects) decodes to zero instead of failing the request.
type LenientAmount decimal.Decimal

// UnmarshalJSON implements json.Unmarshaler.
func (a *LenientAmount) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		d = decimal.Zero
	}
	*a = LenientAmount(d)
	return nil
}

// Decimal returns the amount as a decimal.
func (a LenientAmount) Decimal() decimal.Decimal {
	return decimal.Decimal(a)
}

// CashFlowRequest is the input of the 12-month cash-timing model.
// Percentages are whole numbers (20 means 20%).
type CashFlowRequest struct {
	MonthlyRevenue      decimal.Decimal `json:"monthlyRevenue" swaggertype:"number" example:"500000"`
	FixedCosts          decimal.Decimal `json:"fixedCosts" swaggertype:"number" example:"400000"`
	VariableCostPercent decimal.Decimal `json:"variableCostPercent" swaggertype:"number" example:"20"`
	StartingBalance     decimal.Decimal `json:"startingBalance" swaggertype:"number" example:"3000000"`
	DSO                 decimal.Decimal `json:"dso" swaggertype:"number" example:"30"`
	DPO                 decimal.Decimal `json:"dpo" swaggertype:"number" example:"15"`
	// Up to 12 entries, month 1 first; missing months are zero.
	OneTimeIncome []LenientAmount `json:"oneTimeIncome" swaggertype:"array,number"`
	StartMonth    int             `json:"startMonth" example:"1"`
}

// ToAssumptions sanitizes the request into engine input. The one-time income
// vector is zero-filled to twelve months; a longer vector is rejected.
func (r CashFlowRequest) ToAssumptions() (domain.CashFlowAssumptions, error) {
	if len(r.OneTimeIncome) > domain.CashFlowMonths {
		return domain.CashFlowAssumptions{}, fmt.Errorf("%w: oneTimeIncome has %d entries, at most %d allowed",
			apperrors.ErrValidation, len(r.OneTimeIncome), domain.CashFlowMonths)
	}
	oneTime := make([]decimal.Decimal, domain.CashFlowMonths)
	for i := range oneTime {
		oneTime[i] = decimal.Zero
		if i < len(r.OneTimeIncome) {
			oneTime[i] = r.OneTimeIncome[i].Decimal()
		}
	}
	return domain.CashFlowAssumptions{
		MonthlyRevenue:      r.MonthlyRevenue,
		FixedCosts:          r.FixedCosts,
		VariableCostPercent: r.VariableCostPercent,
		StartingBalance:     r.StartingBalance,
		DSO:                 r.DSO,
		DPO:                 r.DPO,
		OneTimeIncome:       oneTime,
		StartMonth:          r.StartMonth,
	}, nil
}

// FinancialModelRequest is the input of the 36-month integrated model.
type FinancialModelRequest struct {
	StartingRevenue     decimal.Decimal `json:"startingRevenue" swaggertype:"number" example:"100000"`
	GrowthRatePercent   decimal.Decimal `json:"growthRatePercent" swaggertype:"number" example:"5"`
	COGSPercent         decimal.Decimal `json:"cogsPercent" swaggertype:"number" example:"40"`
	FixedOpex           decimal.Decimal `json:"fixedOpex" swaggertype:"number" example:"30000"`
	VariableOpexPercent decimal.Decimal `json:"variableOpexPercent" swaggertype:"number" example:"10"`
	StartingCash        decimal.Decimal `json:"startingCash" swaggertype:"number" example:"1000000"`
	DSO                 decimal.Decimal `json:"dso" swaggertype:"number" example:"30"`
	DPO                 decimal.Decimal `json:"dpo" swaggertype:"number" example:"30"`
	TaxRatePercent      decimal.Decimal `json:"taxRatePercent" swaggertype:"number" example:"25"`
	AnnualCapex         decimal.Decimal `json:"annualCapex" swaggertype:"number" example:"120000"`
	DepreciationYears   decimal.Decimal `json:"depreciationYears" swaggertype:"number" example:"5"`
	StartMonth          int             `json:"startMonth" example:"1"`
}

// ToAssumptions converts the request into engine input.
func (r FinancialModelRequest) ToAssumptions() domain.ModelAssumptions {
	return domain.ModelAssumptions{
		StartingRevenue:     r.StartingRevenue,
		GrowthRatePercent:   r.GrowthRatePercent,
		COGSPercent:         r.COGSPercent,
		FixedOpex:           r.FixedOpex,
		VariableOpexPercent: r.VariableOpexPercent,
		StartingCash:        r.StartingCash,
		DSO:                 r.DSO,
		DPO:                 r.DPO,
		TaxRatePercent:      r.TaxRatePercent,
		AnnualCapex:         r.AnnualCapex,
		DepreciationYears:   r.DepreciationYears,
		StartMonth:          r.StartMonth,
	}
}

// SensitivityVariantRequest is one what-if adjustment of the inputs.
type SensitivityVariantRequest struct {
	Label                string          `json:"label" binding:"required,max=64" example:"Revenue -20%"`
	RevenueChangePercent decimal.Decimal `json:"revenueChangePercent" swaggertype:"number" example:"-20"`
	CostChangePercent    decimal.Decimal `json:"costChangePercent" swaggertype:"number" example:"0"`
}

// SensitivityRequest runs one model under several variants of its inputs.
// Exactly the assumptions matching Kind must be provided.
type SensitivityRequest struct {
	Kind     domain.ScenarioKind         `json:"kind" binding:"required,oneof=cash_flow financial_model" example:"cash_flow"`
	CashFlow *CashFlowRequest            `json:"cashFlow,omitempty"`
	Model    *FinancialModelRequest      `json:"model,omitempty"`
	Variants []SensitivityVariantRequest `json:"variants" binding:"required,min=1,max=10,dive"`
}

// ToVariants converts the requested variants to domain values.
func (r SensitivityRequest) ToVariants() []domain.SensitivityVariant {
	out := make([]domain.SensitivityVariant, len(r.Variants))
	for i, v := range r.Variants {
		out[i] = domain.SensitivityVariant{
			Label:                v.Label,
			RevenueChangePercent: v.RevenueChangePercent,
			CostChangePercent:    v.CostChangePercent,
		}
	}
	return out
}

// SensitivityResponse lists the base case first, then each variant in request order.
type SensitivityResponse struct {
	Kind    domain.ScenarioKind        `json:"kind"`
	Results []domain.SensitivityResult `json:"results"`
}

// CashFlowProjectionResponse is a cash-flow projection with amounts rounded to cents.
type CashFlowProjectionResponse struct {
	domain.CashFlowProjection
}

// FinancialModelResponse is a financial model with amounts rounded to cents.
type FinancialModelResponse struct {
	domain.FinancialModel
}

// ToCashFlowProjectionResponse rounds a computed projection for display.
// The input is not modified.
func ToCashFlowProjectionResponse(p *domain.CashFlowProjection) CashFlowProjectionResponse {
	months := make([]domain.CashFlowMonth, len(p.Months))
	for i, m := range p.Months {
		months[i] = domain.CashFlowMonth{
			Month:            m.Month,
			Label:            m.Label,
			RecurringRevenue: r2(m.RecurringRevenue),
			OneTimeIncome:    r2(m.OneTimeIncome),
			TotalRevenue:     r2(m.TotalRevenue),
			FixedCosts:       r2(m.FixedCosts),
			VariableCosts:    r2(m.VariableCosts),
			TotalExpenses:    r2(m.TotalExpenses),
			NetProfit:        r2(m.NetProfit),
			CashPosition:     roundPosition(m.CashPosition),
		}
	}
	return CashFlowProjectionResponse{domain.CashFlowProjection{
		Assumptions: p.Assumptions,
		Months:      months,
		Summary:     RoundSummary(p.Summary),
	}}
}

// ToFinancialModelResponse rounds a computed model for display. The input is not modified.
func ToFinancialModelResponse(fm *domain.FinancialModel) FinancialModelResponse {
	months := make([]domain.ModelMonth, len(fm.Months))
	for i, m := range fm.Months {
		months[i] = domain.ModelMonth{
			Month:                   m.Month,
			Label:                   m.Label,
			Revenue:                 r2(m.Revenue),
			COGS:                    r2(m.COGS),
			GrossProfit:             r2(m.GrossProfit),
			FixedOpex:               r2(m.FixedOpex),
			VariableOpex:            r2(m.VariableOpex),
			EBITDA:                  r2(m.EBITDA),
			Depreciation:            r2(m.Depreciation),
			PreTaxProfit:            r2(m.PreTaxProfit),
			Tax:                     r2(m.Tax),
			NetProfit:               r2(m.NetProfit),
			Capex:                   r2(m.Capex),
			OperatingCashFlow:       r2(m.OperatingCashFlow),
			InvestingCashFlow:       r2(m.InvestingCashFlow),
			CashPosition:            roundPosition(m.CashPosition),
			CumulativeCapex:         r2(m.CumulativeCapex),
			AccumulatedDepreciation: r2(m.AccumulatedDepreciation),
			NetFixedAssets:          r2(m.NetFixedAssets),
			RetainedEarnings:        r2(m.RetainedEarnings),
			TotalAssets:             r2(m.TotalAssets),
			TotalLiabilities:        r2(m.TotalLiabilities),
			TotalEquity:             r2(m.TotalEquity),
		}
	}

	years := make([]domain.ModelYear, len(fm.Years))
	for i, y := range fm.Years {
		years[i] = domain.ModelYear{
			Year:                    y.Year,
			Revenue:                 r2(y.Revenue),
			COGS:                    r2(y.COGS),
			GrossProfit:             r2(y.GrossProfit),
			FixedOpex:               r2(y.FixedOpex),
			VariableOpex:            r2(y.VariableOpex),
			EBITDA:                  r2(y.EBITDA),
			Depreciation:            r2(y.Depreciation),
			PreTaxProfit:            r2(y.PreTaxProfit),
			Tax:                     r2(y.Tax),
			NetProfit:               r2(y.NetProfit),
			Capex:                   r2(y.Capex),
			OperatingCashFlow:       r2(y.OperatingCashFlow),
			InvestingCashFlow:       r2(y.InvestingCashFlow),
			CashInflow:              r2(y.CashInflow),
			CashOutflow:             r2(y.CashOutflow),
			NetCashFlow:             r2(y.NetCashFlow),
			OpeningCash:             r2(y.OpeningCash),
			ClosingCash:             r2(y.ClosingCash),
			Receivables:             r2(y.Receivables),
			Payables:                r2(y.Payables),
			CumulativeCapex:         r2(y.CumulativeCapex),
			AccumulatedDepreciation: r2(y.AccumulatedDepreciation),
			NetFixedAssets:          r2(y.NetFixedAssets),
			RetainedEarnings:        r2(y.RetainedEarnings),
			TotalAssets:             r2(y.TotalAssets),
			TotalLiabilities:        r2(y.TotalLiabilities),
			TotalEquity:             r2(y.TotalEquity),
			GrossMarginPercent:      r2(y.GrossMarginPercent),
			NetMarginPercent:        r2(y.NetMarginPercent),
		}
	}

	return FinancialModelResponse{domain.FinancialModel{
		Assumptions: fm.Assumptions,
		Seed:        fm.Seed,
		Months:      months,
		Years:       years,
		Summary:     RoundSummary(fm.Summary),
	}}
}

// RoundSummary rounds every amount of a summary to cents.
func RoundSummary(s domain.ProjectionSummary) domain.ProjectionSummary {
	return domain.ProjectionSummary{
		PeakBalance:             r2(s.PeakBalance),
		TroughBalance:           r2(s.TroughBalance),
		EndingBalance:           r2(s.EndingBalance),
		TotalNetCashFlow:        r2(s.TotalNetCashFlow),
		NegativeFlowMonths:      s.NegativeFlowMonths,
		NegativeBalanceMonths:   s.NegativeBalanceMonths,
		CashConversionCycleDays: r2(s.CashConversionCycleDays),
		WorkingCapitalTiedUp:    r2(s.WorkingCapitalTiedUp),
	}
}

func roundPosition(c domain.CashPosition) domain.CashPosition {
	return domain.CashPosition{
		OpeningBalance: r2(c.OpeningBalance),
		CashInflow:     r2(c.CashInflow),
		CashOutflow:    r2(c.CashOutflow),
		NetCashFlow:    r2(c.NetCashFlow),
		ClosingBalance: r2(c.ClosingBalance),
		Receivables:    r2(c.Receivables),
		Payables:       r2(c.Payables),
	}
}

func r2(d decimal.Decimal) decimal.Decimal {
	return utils.RoundAmount(d)
}
