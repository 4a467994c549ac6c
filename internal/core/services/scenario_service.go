package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	portsrepo "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/projection"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
)

// scenarioService implements the ScenarioSvcFacade interface
type scenarioService struct {
	BaseService
	scenarioRepo portsrepo.ScenarioRepositoryFacade
	projection   portssvc.ProjectionSvcFacade
	now          func() time.Time
}

// ScenarioServiceOption is a functional option for configuring the scenario service
type ScenarioServiceOption func(*scenarioService)

// WithScenarioClock overrides the time source used for audit fields.
func WithScenarioClock(now func() time.Time) ScenarioServiceOption {
	return func(s *scenarioService) {
		s.now = now
	}
}

// NewScenarioService creates a new scenario service. Runs and exports go through projectionSvc.
func NewScenarioService(repo portsrepo.ScenarioRepositoryFacade, projectionSvc portssvc.ProjectionSvcFacade, options ...ScenarioServiceOption) portssvc.ScenarioSvcFacade {
	svc := &scenarioService{
		scenarioRepo: repo,
		projection:   projectionSvc,
		now:          time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ScenarioSvcFacade = (*scenarioService)(nil)

// cashFlowAssumptions converts and validates a cash flow request.
func cashFlowAssumptions(req *dto.CashFlowRequest) (*domain.CashFlowAssumptions, error) {
	a, err := req.ToAssumptions()
	if err != nil {
		return nil, err
	}
	if err := projection.ValidateCashFlow(a); err != nil {
		return nil, err
	}
	return &a, nil
}

// modelAssumptions converts and validates a financial model request.
func modelAssumptions(req *dto.FinancialModelRequest) (*domain.ModelAssumptions, error) {
	a := req.ToAssumptions()
	if err := projection.ValidateModel(a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *scenarioService) CreateScenario(ctx context.Context, req dto.CreateScenarioRequest, userID string) (*domain.Scenario, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	now := s.now().UTC()
	scenario := domain.Scenario{
		ScenarioID: uuid.NewString(),
		OwnerID:    userID,
		Name:       name,
		Kind:       req.Kind,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	var err error
	switch req.Kind {
	case domain.CashFlowScenario:
		if req.CashFlow == nil || req.Model != nil {
			return nil, fmt.Errorf("%w: a cash_flow scenario takes cashFlow assumptions only", apperrors.ErrValidation)
		}
		scenario.CashFlow, err = cashFlowAssumptions(req.CashFlow)
	case domain.FinancialModelScenario:
		if req.Model == nil || req.CashFlow != nil {
			return nil, fmt.Errorf("%w: a financial_model scenario takes model assumptions only", apperrors.ErrValidation)
		}
		scenario.Model, err = modelAssumptions(req.Model)
	default:
		return nil, fmt.Errorf("%w: unknown scenario kind %q", apperrors.ErrValidation, req.Kind)
	}
	if err != nil {
		return nil, err
	}

	if err := s.scenarioRepo.SaveScenario(ctx, scenario); err != nil {
		s.LogError(ctx, err, "Failed to save scenario", slog.String("scenario_id", scenario.ScenarioID))
		return nil, err
	}

	s.LogInfo(ctx, "Scenario created",
		slog.String("scenario_id", scenario.ScenarioID),
		slog.String("kind", string(scenario.Kind)))
	return &scenario, nil
}

func (s *scenarioService) GetScenario(ctx context.Context, scenarioID string, userID string) (*domain.Scenario, error) {
	scenario, err := s.scenarioRepo.FindScenarioByID(ctx, scenarioID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find scenario", slog.String("scenario_id", scenarioID))
		}
		return nil, err
	}
	if scenario.OwnerID != userID {
		s.LogWarn(ctx, "Scenario accessed by non-owner",
			slog.String("scenario_id", scenarioID),
			slog.String("user_id", userID))
		return nil, fmt.Errorf("%w: scenario %s belongs to another user", apperrors.ErrForbidden, scenarioID)
	}
	return scenario, nil
}

func (s *scenarioService) ListScenarios(ctx context.Context, userID string, params dto.ListScenariosParams) (*dto.ListScenariosResponse, error) {
	scenarios, nextToken, err := s.scenarioRepo.ListScenariosByOwner(ctx, userID, params.Limit, params.NextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list scenarios", slog.String("user_id", userID))
		}
		return nil, err
	}

	s.LogDebug(ctx, "Scenarios listed", slog.Int("count", len(scenarios)))
	return &dto.ListScenariosResponse{
		Scenarios: dto.ToScenarioResponses(scenarios),
		NextToken: nextToken,
	}, nil
}

func (s *scenarioService) UpdateScenario(ctx context.Context, scenarioID string, req dto.UpdateScenarioRequest, userID string) (*domain.Scenario, error) {
	scenario, err := s.GetScenario(ctx, scenarioID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name must not be blank", apperrors.ErrValidation)
		}
		scenario.Name = name
	}
	if req.CashFlow != nil {
		if scenario.Kind != domain.CashFlowScenario {
			return nil, fmt.Errorf("%w: scenario %s is a %s scenario", apperrors.ErrValidation, scenarioID, scenario.Kind)
		}
		if scenario.CashFlow, err = cashFlowAssumptions(req.CashFlow); err != nil {
			return nil, err
		}
	}
	if req.Model != nil {
		if scenario.Kind != domain.FinancialModelScenario {
			return nil, fmt.Errorf("%w: scenario %s is a %s scenario", apperrors.ErrValidation, scenarioID, scenario.Kind)
		}
		if scenario.Model, err = modelAssumptions(req.Model); err != nil {
			return nil, err
		}
	}

	scenario.LastUpdatedAt = s.now().UTC()
	scenario.LastUpdatedBy = userID
	scenario.Version++

	if err := s.scenarioRepo.UpdateScenario(ctx, *scenario); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update scenario", slog.String("scenario_id", scenarioID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Scenario updated",
		slog.String("scenario_id", scenarioID),
		slog.Int("version", scenario.Version))
	return scenario, nil
}

func (s *scenarioService) DeleteScenario(ctx context.Context, scenarioID string, userID string) error {
	if _, err := s.GetScenario(ctx, scenarioID, userID); err != nil {
		return err
	}
	if err := s.scenarioRepo.DeleteScenario(ctx, scenarioID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete scenario", slog.String("scenario_id", scenarioID))
		}
		return err
	}
	s.LogInfo(ctx, "Scenario deleted", slog.String("scenario_id", scenarioID))
	return nil
}

func (s *scenarioService) RunScenario(ctx context.Context, scenarioID string, userID string) (*domain.ScenarioRun, error) {
	scenario, err := s.GetScenario(ctx, scenarioID, userID)
	if err != nil {
		return nil, err
	}

	run := &domain.ScenarioRun{Scenario: *scenario}
	switch {
	case scenario.Kind == domain.CashFlowScenario && scenario.CashFlow != nil:
		run.CashFlow, err = s.projection.CalculateCashFlow(ctx, *scenario.CashFlow)
	case scenario.Kind == domain.FinancialModelScenario && scenario.Model != nil:
		run.Model, err = s.projection.CalculateFinancialModel(ctx, *scenario.Model)
	default:
		err = fmt.Errorf("%w: scenario %s has no %s assumptions", apperrors.ErrInvariant, scenarioID, scenario.Kind)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

func (s *scenarioService) ExportScenario(ctx context.Context, w io.Writer, scenarioID string, userID string) (string, error) {
	scenario, err := s.GetScenario(ctx, scenarioID, userID)
	if err != nil {
		return "", err
	}

	switch {
	case scenario.Kind == domain.CashFlowScenario && scenario.CashFlow != nil:
		err = s.projection.ExportCashFlow(ctx, w, *scenario.CashFlow)
	case scenario.Kind == domain.FinancialModelScenario && scenario.Model != nil:
		err = s.projection.ExportFinancialModel(ctx, w, *scenario.Model)
	default:
		err = fmt.Errorf("%w: scenario %s has no %s assumptions", apperrors.ErrInvariant, scenarioID, scenario.Kind)
	}
	if err != nil {
		return "", err
	}
	return s.projection.ExportFileName(scenario.Kind), nil
}
