package repositories

import (
	"context"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
)

// ScenarioReader defines read operations for saved scenarios
type ScenarioReader interface {
	// FindScenarioByID retrieves a scenario by its ID, regardless of owner.
	FindScenarioByID(ctx context.Context, scenarioID string) (*domain.Scenario, error)

	// ListScenariosByOwner retrieves one page of an owner's scenarios, newest first,
	// and the token of the next page (nil on the last page).
	ListScenariosByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Scenario, *string, error)
}

// ScenarioWriter defines write operations for saved scenarios
type ScenarioWriter interface {
	// SaveScenario inserts a new scenario.
	SaveScenario(ctx context.Context, scenario domain.Scenario) error

	// UpdateScenario overwrites name and assumptions. The stored version must be
	// scenario.Version-1, otherwise the update is rejected.
	UpdateScenario(ctx context.Context, scenario domain.Scenario) error

	// DeleteScenario removes a scenario.
	DeleteScenario(ctx context.Context, scenarioID string) error
}

// ScenarioRepositoryFacade combines all scenario-related repository interfaces
type ScenarioRepositoryFacade interface {
	ScenarioReader
	ScenarioWriter
}
