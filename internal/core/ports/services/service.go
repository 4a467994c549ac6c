package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
// Scenario is nil when no database is configured.
type ServiceContainer struct {
	Projection ProjectionSvcFacade
	Scenario   ScenarioSvcFacade
}
