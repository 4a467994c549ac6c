package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		Version:       d.Version,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
		Version:       m.Version,
	}
}

// ToModelScenario converts a domain Scenario to its row form, encoding the
// assumption set of its kind as JSON.
func ToModelScenario(d domain.Scenario) (models.Scenario, error) {
	var payload interface{}
	switch d.Kind {
	case domain.CashFlowScenario:
		if d.CashFlow == nil {
			return models.Scenario{}, fmt.Errorf("scenario %s has no cash flow assumptions", d.ScenarioID)
		}
		payload = d.CashFlow
	case domain.FinancialModelScenario:
		if d.Model == nil {
			return models.Scenario{}, fmt.Errorf("scenario %s has no financial model assumptions", d.ScenarioID)
		}
		payload = d.Model
	default:
		return models.Scenario{}, fmt.Errorf("scenario %s has unknown kind %q", d.ScenarioID, d.Kind)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return models.Scenario{}, fmt.Errorf("failed to encode assumptions of scenario %s: %w", d.ScenarioID, err)
	}

	return models.Scenario{
		ScenarioID:  d.ScenarioID,
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Kind:        string(d.Kind),
		Assumptions: raw,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}, nil
}

// ToDomainScenario converts a scenario row back to the domain, decoding its assumptions.
func ToDomainScenario(m models.Scenario) (domain.Scenario, error) {
	d := domain.Scenario{
		ScenarioID:  m.ScenarioID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Kind:        domain.ScenarioKind(m.Kind),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}

	switch d.Kind {
	case domain.CashFlowScenario:
		var a domain.CashFlowAssumptions
		if err := json.Unmarshal(m.Assumptions, &a); err != nil {
			return domain.Scenario{}, fmt.Errorf("failed to decode assumptions of scenario %s: %w", m.ScenarioID, err)
		}
		d.CashFlow = &a
	case domain.FinancialModelScenario:
		var a domain.ModelAssumptions
		if err := json.Unmarshal(m.Assumptions, &a); err != nil {
			return domain.Scenario{}, fmt.Errorf("failed to decode assumptions of scenario %s: %w", m.ScenarioID, err)
		}
		d.Model = &a
	default:
		return domain.Scenario{}, fmt.Errorf("scenario %s has unknown kind %q", m.ScenarioID, m.Kind)
	}
	return d, nil
}

// ToDomainScenarioSlice converts a slice of scenario rows.
func ToDomainScenarioSlice(ms []models.Scenario) ([]domain.Scenario, error) {
	out := make([]domain.Scenario, 0, len(ms))
	for _, m := range ms {
		d, err := ToDomainScenario(m)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
