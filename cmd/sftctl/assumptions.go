package main

import (
	"fmt"
	"os"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"
)

// cashFlowFile is the on-disk form of the cash flow assumptions. JSON files parse too,
// since JSON is valid YAML.
type cashFlowFile struct {
	MonthlyRevenue      float64   `yaml:"monthlyRevenue"`
	FixedCosts          float64   `yaml:"fixedCosts"`
	VariableCostPercent float64   `yaml:"variableCostPercent"`
	StartingBalance     float64   `yaml:"startingBalance"`
	DSO                 float64   `yaml:"dso"`
	DPO                 float64   `yaml:"dpo"`
	OneTimeIncome       []float64 `yaml:"oneTimeIncome"`
	StartMonth          int       `yaml:"startMonth"`
}

type modelFile struct {
	StartingRevenue     float64 `yaml:"startingRevenue"`
	GrowthRatePercent   float64 `yaml:"growthRatePercent"`
	COGSPercent         float64 `yaml:"cogsPercent"`
	FixedOpex           float64 `yaml:"fixedOpex"`
	VariableOpexPercent float64 `yaml:"variableOpexPercent"`
	StartingCash        float64 `yaml:"startingCash"`
	DSO                 float64 `yaml:"dso"`
	DPO                 float64 `yaml:"dpo"`
	TaxRatePercent      float64 `yaml:"taxRatePercent"`
	AnnualCapex         float64 `yaml:"annualCapex"`
	DepreciationYears   float64 `yaml:"depreciationYears"`
	StartMonth          int     `yaml:"startMonth"`
}

func readYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read assumptions: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, out); err != nil {
		return fmt.Errorf("%w: parse %s: %v", apperrors.ErrValidation, path, err)
	}
	return nil
}

func loadCashFlowFile(path string) (domain.CashFlowAssumptions, error) {
	var f cashFlowFile
	if err := readYAML(path, &f); err != nil {
		return domain.CashFlowAssumptions{}, err
	}
	if len(f.OneTimeIncome) > domain.CashFlowMonths {
		return domain.CashFlowAssumptions{}, fmt.Errorf("%w: oneTimeIncome has %d entries, at most %d allowed",
			apperrors.ErrValidation, len(f.OneTimeIncome), domain.CashFlowMonths)
	}

	oneTime := make([]decimal.Decimal, domain.CashFlowMonths)
	for i := range oneTime {
		oneTime[i] = decimal.Zero
		if i < len(f.OneTimeIncome) {
			oneTime[i] = decimal.NewFromFloat(f.OneTimeIncome[i])
		}
	}

	return domain.CashFlowAssumptions{
		MonthlyRevenue:      decimal.NewFromFloat(f.MonthlyRevenue),
		FixedCosts:          decimal.NewFromFloat(f.FixedCosts),
		VariableCostPercent: decimal.NewFromFloat(f.VariableCostPercent),
		StartingBalance:     decimal.NewFromFloat(f.StartingBalance),
		DSO:                 decimal.NewFromFloat(f.DSO),
		DPO:                 decimal.NewFromFloat(f.DPO),
		OneTimeIncome:       oneTime,
		StartMonth:          f.StartMonth,
	}, nil
}

func loadModelFile(path string) (domain.ModelAssumptions, error) {
	var f modelFile
	if err := readYAML(path, &f); err != nil {
		return domain.ModelAssumptions{}, err
	}
	return domain.ModelAssumptions{
		StartingRevenue:     decimal.NewFromFloat(f.StartingRevenue),
		GrowthRatePercent:   decimal.NewFromFloat(f.GrowthRatePercent),
		COGSPercent:         decimal.NewFromFloat(f.COGSPercent),
		FixedOpex:           decimal.NewFromFloat(f.FixedOpex),
		VariableOpexPercent: decimal.NewFromFloat(f.VariableOpexPercent),
		StartingCash:        decimal.NewFromFloat(f.StartingCash),
		DSO:                 decimal.NewFromFloat(f.DSO),
		DPO:                 decimal.NewFromFloat(f.DPO),
		TaxRatePercent:      decimal.NewFromFloat(f.TaxRatePercent),
		AnnualCapex:         decimal.NewFromFloat(f.AnnualCapex),
		DepreciationYears:   decimal.NewFromFloat(f.DepreciationYears),
		StartMonth:          f.StartMonth,
	}, nil
}
