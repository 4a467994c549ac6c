package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/apperrors"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/core/domain"
	portsrepo "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/repositories"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/models"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils/mapping"
	"github.com/kpdgayao/startup-finance-tools-sub000/internal/utils/pagination"
)

const scenarioColumns = `scenario_id, owner_id, name, kind, assumptions,
	created_at, created_by, last_updated_at, last_updated_by, version`

type PgxScenarioRepository struct {
	BaseRepository
}

// newPgxScenarioRepository creates a new repository for saved scenarios.
func newPgxScenarioRepository(pool *pgxpool.Pool) portsrepo.ScenarioRepositoryFacade {
	return &PgxScenarioRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ScenarioRepositoryFacade = (*PgxScenarioRepository)(nil)

func scanScenario(row pgx.Row) (models.Scenario, error) {
	var m models.Scenario
	err := row.Scan(
		&m.ScenarioID,
		&m.OwnerID,
		&m.Name,
		&m.Kind,
		&m.Assumptions,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

// SaveScenario inserts a new scenario.
func (r *PgxScenarioRepository) SaveScenario(ctx context.Context, scenario domain.Scenario) error {
	m, err := mapping.ToModelScenario(scenario)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO scenarios (` + scenarioColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ScenarioID,
		m.OwnerID,
		m.Name,
		m.Kind,
		m.Assumptions,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: scenario %s", apperrors.ErrDuplicate, m.ScenarioID)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save scenario "+m.ScenarioID, err)
	}
	return nil
}

// FindScenarioByID retrieves a scenario by its ID.
func (r *PgxScenarioRepository) FindScenarioByID(ctx context.Context, scenarioID string) (*domain.Scenario, error) {
	query := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE scenario_id = $1;`

	m, err := scanScenario(r.Pool.QueryRow(ctx, query, scenarioID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: scenario %s", apperrors.ErrNotFound, scenarioID)
		}
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to find scenario "+scenarioID, err)
	}

	s, err := mapping.ToDomainScenario(m)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListScenariosByOwner returns one page of the owner's scenarios, newest first, and a token for
// the next page when there is one.
func (r *PgxScenarioRepository) ListScenariosByOwner(ctx context.Context, ownerID string, limit int, nextToken *string) ([]domain.Scenario, *string, error) {
	limit = pagination.NormalizeLimit(limit)
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + scenarioColumns + ` FROM scenarios WHERE owner_id = $1`
	orderByClause := `ORDER BY created_at DESC, scenario_id DESC`
	args := []interface{}{ownerID}

	query := baseQuery
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		query += ` AND (created_at, scenario_id) < ($2, $3)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}
	query += " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query scenarios for owner "+ownerID, err)
	}
	defer rows.Close()

	modelScenarios := make([]models.Scenario, 0, fetchLimit)
	for rows.Next() {
		m, err := scanScenario(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to scan scenario row", err)
		}
		modelScenarios = append(modelScenarios, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "error iterating scenario rows", err)
	}

	var newNextToken *string
	if len(modelScenarios) > limit {
		last := modelScenarios[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ScenarioID)
		newNextToken = &token
		modelScenarios = modelScenarios[:limit]
	}

	scenarios, err := mapping.ToDomainScenarioSlice(modelScenarios)
	if err != nil {
		return nil, nil, err
	}
	return scenarios, newNextToken, nil
}

// UpdateScenario overwrites the name and assumptions of a scenario. The stored version must be
// exactly one behind scenario.Version, otherwise ErrConflict is returned.
func (r *PgxScenarioRepository) UpdateScenario(ctx context.Context, scenario domain.Scenario) error {
	m, err := mapping.ToModelScenario(scenario)
	if err != nil {
		return err
	}

	query := `
		UPDATE scenarios
		SET name = $2, assumptions = $3, last_updated_at = $4, last_updated_by = $5, version = $6
		WHERE scenario_id = $1 AND version = $6 - 1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.ScenarioID,
		m.Name,
		m.Assumptions,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update scenario "+m.ScenarioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scenario %s", apperrors.ErrConflict, m.ScenarioID)
	}
	return nil
}

// DeleteScenario removes a scenario.
func (r *PgxScenarioRepository) DeleteScenario(ctx context.Context, scenarioID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM scenarios WHERE scenario_id = $1;`, scenarioID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete scenario "+scenarioID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: scenario %s", apperrors.ErrNotFound, scenarioID)
	}
	return nil
}
