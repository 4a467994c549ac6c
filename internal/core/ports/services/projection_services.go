package services

import (
	"context"
	"io"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
)

// ProjectionCalculatorSvc runs the projection engine.
type ProjectionCalculatorSvc interface {
	// CalculateCashFlow runs the 12-month cash-timing model.
	CalculateCashFlow(ctx context.Context, assumptions domain.CashFlowAssumptions) (*domain.CashFlowProjection, error)

	// CalculateFinancialModel runs the 36-month integrated model.
	CalculateFinancialModel(ctx context.Context, assumptions domain.ModelAssumptions) (*domain.FinancialModel, error)
}

// ProjectionExporterSvc renders projections as tabular exports.
type ProjectionExporterSvc interface {
	// ExportCashFlow runs the cash-timing model and writes it as CSV.
	ExportCashFlow(ctx context.Context, w io.Writer, assumptions domain.CashFlowAssumptions) error

	// ExportFinancialModel runs the integrated model and writes it as CSV.
	ExportFinancialModel(ctx context.Context, w io.Writer, assumptions domain.ModelAssumptions) error

	// ExportFileName suggests an attachment name for an export.
	ExportFileName(kind domain.ScenarioKind) string
}

// SensitivitySvc re-runs a model under what-if variants of its inputs.
type SensitivitySvc interface {
	// CashFlowSensitivity returns the summary of the base case followed by one per variant.
	CashFlowSensitivity(ctx context.Context, assumptions domain.CashFlowAssumptions, variants []domain.SensitivityVariant) ([]domain.SensitivityResult, error)

	// ModelSensitivity returns the summary of the base case followed by one per variant.
	ModelSensitivity(ctx context.Context, assumptions domain.ModelAssumptions, variants []domain.SensitivityVariant) ([]domain.SensitivityResult, error)
}

// ProjectionSvcFacade combines all projection-related service interfaces
type ProjectionSvcFacade interface {
	ProjectionCalculatorSvc
	ProjectionExporterSvc
	SensitivitySvc
}
