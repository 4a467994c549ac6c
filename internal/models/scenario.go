package models

// Scenario is a row of the scenarios table. Assumptions hold the JSON encoding of
// the assumption set matching Kind.
type Scenario struct {
	ScenarioID  string `db:"scenario_id"`
	OwnerID     string `db:"owner_id"`
	Name        string `db:"name"`
	Kind        string `db:"kind"`
	Assumptions []byte `db:"assumptions"`
	AuditFields
}
