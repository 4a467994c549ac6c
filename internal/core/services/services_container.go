package services

import (
	portsrepo "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/repositories"
	portssvc "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/services"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/export"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// repos may be nil, in which case saved scenarios are unavailable.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Projection = NewProjectionService(
		WithExporter(export.NewCSVExporter(export.WithTitle(cfg.ExportTitle))),
	)

	if repos != nil && repos.ScenarioRepo != nil {
		container.Scenario = NewScenarioService(repos.ScenarioRepo, container.Projection)
	}

	return container
}
