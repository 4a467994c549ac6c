package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/projection"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/export"
	"golang.org/x/sync/errgroup"
)

// projectionService implements the ProjectionSvcFacade interface
type projectionService struct {
	BaseService
	exporter *export.CSVExporter
}

// ProjectionServiceOption is a functional option for configuring the projection service
type ProjectionServiceOption func(*projectionService)

// WithExporter replaces the default CSV exporter.
func WithExporter(exporter *export.CSVExporter) ProjectionServiceOption {
	return func(s *projectionService) {
		s.exporter = exporter
	}
}

// NewProjectionService creates a new projection service with the provided options
func NewProjectionService(options ...ProjectionServiceOption) portssvc.ProjectionSvcFacade {
	svc := &projectionService{
		exporter: export.NewCSVExporter(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ProjectionSvcFacade = (*projectionService)(nil)

// logEngineError logs computation defects. Rejected input is the caller's problem and is not logged
// as an error.
func (s *projectionService) logEngineError(ctx context.Context, err error, msg string) {
	if errors.Is(err, apperrors.ErrValidation) {
		s.LogDebug(ctx, msg, slog.String("reason", err.Error()))
		return
	}
	s.LogError(ctx, err, msg)
}

func (s *projectionService) CalculateCashFlow(ctx context.Context, assumptions domain.CashFlowAssumptions) (*domain.CashFlowProjection, error) {
	p, err := projection.ProjectCashFlow(assumptions)
	if err != nil {
		s.logEngineError(ctx, err, "Cash flow projection failed")
		return nil, err
	}
	s.LogDebug(ctx, "Cash flow projection computed",
		slog.String("ending_balance", p.Summary.EndingBalance.StringFixed(2)),
		slog.Int("negative_months", p.Summary.NegativeFlowMonths))
	return p, nil
}

func (s *projectionService) CalculateFinancialModel(ctx context.Context, assumptions domain.ModelAssumptions) (*domain.FinancialModel, error) {
	fm, err := projection.ProjectFinancialModel(assumptions)
	if err != nil {
		s.logEngineError(ctx, err, "Financial model projection failed")
		return nil, err
	}
	s.LogDebug(ctx, "Financial model computed",
		slog.String("ending_balance", fm.Summary.EndingBalance.StringFixed(2)))
	return fm, nil
}

func (s *projectionService) ExportCashFlow(ctx context.Context, w io.Writer, assumptions domain.CashFlowAssumptions) error {
	p, err := s.CalculateCashFlow(ctx, assumptions)
	if err != nil {
		return err
	}
	if err := s.exporter.WriteCashFlow(w, p); err != nil {
		s.LogError(ctx, err, "Failed to write cash flow export")
		return fmt.Errorf("failed to export cash flow projection: %w", err)
	}
	return nil
}

func (s *projectionService) ExportFinancialModel(ctx context.Context, w io.Writer, assumptions domain.ModelAssumptions) error {
	fm, err := s.CalculateFinancialModel(ctx, assumptions)
	if err != nil {
		return err
	}
	if err := s.exporter.WriteFinancialModel(w, fm); err != nil {
		s.LogError(ctx, err, "Failed to write financial model export")
		return fmt.Errorf("failed to export financial model: %w", err)
	}
	return nil
}

func (s *projectionService) ExportFileName(kind domain.ScenarioKind) string {
	return s.exporter.FileName(kind)
}

func (s *projectionService) CashFlowSensitivity(ctx context.Context, assumptions domain.CashFlowAssumptions, variants []domain.SensitivityVariant) ([]domain.SensitivityResult, error) {
	// The base case is validated up front so bad input fails once instead of once per variant.
	if err := projection.ValidateCashFlow(assumptions); err != nil {
		return nil, err
	}
	return s.runVariants(ctx, variants, func(v domain.SensitivityVariant) (domain.ProjectionSummary, error) {
		p, err := projection.ProjectCashFlow(projection.ApplyCashFlowVariant(assumptions, v))
		if err != nil {
			return domain.ProjectionSummary{}, err
		}
		return p.Summary, nil
	})
}

func (s *projectionService) ModelSensitivity(ctx context.Context, assumptions domain.ModelAssumptions, variants []domain.SensitivityVariant) ([]domain.SensitivityResult, error) {
	if err := projection.ValidateModel(assumptions); err != nil {
		return nil, err
	}
	return s.runVariants(ctx, variants, func(v domain.SensitivityVariant) (domain.ProjectionSummary, error) {
		fm, err := projection.ProjectFinancialModel(projection.ApplyModelVariant(assumptions, v))
		if err != nil {
			return domain.ProjectionSummary{}, err
		}
		return fm.Summary, nil
	})
}

// runVariants runs the base case and every variant concurrently. Each run owns its result slot.
func (s *projectionService) runVariants(ctx context.Context, variants []domain.SensitivityVariant, run func(domain.SensitivityVariant) (domain.ProjectionSummary, error)) ([]domain.SensitivityResult, error) {
	all := make([]domain.SensitivityVariant, 0, len(variants)+1)
	all = append(all, domain.SensitivityVariant{Label: domain.BaseCaseLabel})
	all = append(all, variants...)

	results := make([]domain.SensitivityResult, len(all))
	g, gctx := errgroup.WithContext(ctx)
	for i, v := range all {
		i, v := i, v
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := run(v)
			if err != nil {
				return fmt.Errorf("variant %q: %w", v.Label, err)
			}
			results[i] = domain.SensitivityResult{Variant: v, Summary: summary}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logEngineError(ctx, err, "Sensitivity run failed")
		return nil, err
	}

	s.LogDebug(ctx, "Sensitivity computed", slog.Int("variants", len(variants)))
	return results, nil
}
