package services

import (
	"context"
	"io"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/dto"
)

// ScenarioReaderSvc defines read operations for saved scenarios
type ScenarioReaderSvc interface {
	// GetScenario retrieves a scenario owned by userID.
	GetScenario(ctx context.Context, scenarioID string, userID string) (*domain.Scenario, error)

	// ListScenarios retrieves a page of the user's scenarios.
	ListScenarios(ctx context.Context, userID string, params dto.ListScenariosParams) (*dto.ListScenariosResponse, error)
}

// ScenarioWriterSvc defines write operations for saved scenarios
type ScenarioWriterSvc interface {
	// CreateScenario validates and persists a new scenario.
	CreateScenario(ctx context.Context, req dto.CreateScenarioRequest, userID string) (*domain.Scenario, error)

	// UpdateScenario replaces the name and/or assumptions of a scenario.
	UpdateScenario(ctx context.Context, scenarioID string, req dto.UpdateScenarioRequest, userID string) (*domain.Scenario, error)

	// DeleteScenario removes a scenario.
	DeleteScenario(ctx context.Context, scenarioID string, userID string) error
}

// ScenarioRunnerSvc recomputes projections of saved scenarios.
type ScenarioRunnerSvc interface {
	// RunScenario loads a scenario and runs the model of its kind.
	RunScenario(ctx context.Context, scenarioID string, userID string) (*domain.ScenarioRun, error)

	// ExportScenario loads a scenario, runs it and writes the CSV export.
	// It returns the suggested file name.
	ExportScenario(ctx context.Context, w io.Writer, scenarioID string, userID string) (string, error)
}

// ScenarioSvcFacade combines all scenario-related service interfaces
type ScenarioSvcFacade interface {
	ScenarioReaderSvc
	ScenarioWriterSvc
	ScenarioRunnerSvc
}
