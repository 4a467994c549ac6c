package domain

// ScenarioKind names which projection model a saved scenario feeds.
type ScenarioKind string

const (
	CashFlowScenario       ScenarioKind = "cash_flow"
	FinancialModelScenario ScenarioKind = "financial_model"
)

// IsValid reports whether k is a known scenario kind.
func (k ScenarioKind) IsValid() bool {
	return k == CashFlowScenario || k == FinancialModelScenario
}

// Scenario is a named, saved set of assumptions owned by one user.
// Exactly one of CashFlow and Model is set, matching Kind. Only inputs are
// stored; projections are recomputed every time the scenario is run.
type Scenario struct {
	ScenarioID string               `json:"scenarioID"`
	OwnerID    string               `json:"ownerID"`
	Name       string               `json:"name"`
	Kind       ScenarioKind         `json:"kind"`
	CashFlow   *CashFlowAssumptions `json:"cashFlow,omitempty"`
	Model      *ModelAssumptions    `json:"model,omitempty"`
	AuditFields
}

// ScenarioRun is a saved scenario together with its freshly computed projection.
type ScenarioRun struct {
	Scenario Scenario            `json:"scenario"`
	CashFlow *CashFlowProjection `json:"cashFlow,omitempty"`
	Model    *FinancialModel     `json:"model,omitempty"`
}
