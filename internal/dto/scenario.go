package dto

import (
	"time"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
)

// CreateScenarioRequest defines the data needed to save a named assumption set.
// The assumptions matching Kind are required; the other set must be omitted.
type CreateScenarioRequest struct {
	Name     string                 `json:"name" binding:"required,min=1,max=120" example:"Seed round base case"`
	Kind     domain.ScenarioKind    `json:"kind" binding:"required,oneof=cash_flow financial_model" example:"financial_model"`
	CashFlow *CashFlowRequest       `json:"cashFlow,omitempty"`
	Model    *FinancialModelRequest `json:"model,omitempty"`
}

// UpdateScenarioRequest defines the fields that can be changed on a scenario.
// The kind of a scenario is fixed at creation.
type UpdateScenarioRequest struct {
	Name     *string                `json:"name,omitempty" binding:"omitempty,min=1,max=120"`
	CashFlow *CashFlowRequest       `json:"cashFlow,omitempty"`
	Model    *FinancialModelRequest `json:"model,omitempty"`
}

// ListScenariosParams holds the query parameters of a scenario listing.
type ListScenariosParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// ScenarioResponse defines the data returned for a saved scenario.
type ScenarioResponse struct {
	ScenarioID    string                      `json:"scenarioID"`
	Name          string                      `json:"name"`
	Kind          domain.ScenarioKind         `json:"kind"`
	CashFlow      *domain.CashFlowAssumptions `json:"cashFlow,omitempty"`
	Model         *domain.ModelAssumptions    `json:"model,omitempty"`
	CreatedAt     time.Time                   `json:"createdAt"`
	LastUpdatedAt time.Time                   `json:"lastUpdatedAt"`
	Version       int                         `json:"version"`
}

// ListScenariosResponse is one page of scenarios.
type ListScenariosResponse struct {
	Scenarios []ScenarioResponse `json:"scenarios"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ScenarioRunResponse is a scenario with its freshly computed projection.
type ScenarioRunResponse struct {
	Scenario ScenarioResponse            `json:"scenario"`
	CashFlow *CashFlowProjectionResponse `json:"cashFlow,omitempty"`
	Model    *FinancialModelResponse     `json:"model,omitempty"`
}

// ToScenarioResponse converts a domain.Scenario to ScenarioResponse DTO.
func ToScenarioResponse(s *domain.Scenario) ScenarioResponse {
	return ScenarioResponse{
		ScenarioID:    s.ScenarioID,
		Name:          s.Name,
		Kind:          s.Kind,
		CashFlow:      s.CashFlow,
		Model:         s.Model,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
		Version:       s.Version,
	}
}

// ToScenarioResponses converts a slice of domain.Scenario.
func ToScenarioResponses(scenarios []domain.Scenario) []ScenarioResponse {
	res := make([]ScenarioResponse, len(scenarios))
	for i := range scenarios {
		res[i] = ToScenarioResponse(&scenarios[i])
	}
	return res
}

// ToScenarioRunResponse converts a domain.ScenarioRun, rounding its projection.
func ToScenarioRunResponse(run *domain.ScenarioRun) ScenarioRunResponse {
	resp := ScenarioRunResponse{Scenario: ToScenarioResponse(&run.Scenario)}
	if run.CashFlow != nil {
		cf := ToCashFlowProjectionResponse(run.CashFlow)
		resp.CashFlow = &cf
	}
	if run.Model != nil {
		fm := ToFinancialModelResponse(run.Model)
		resp.Model = &fm
	}
	return resp
}
