package pgsql

import (
	portsrepo "github.com/kpdgayao/startup-finance-tools-sub000/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ScenarioRepo: newPgxScenarioRepository(dbPool),
		Health:       &BaseRepository{Pool: dbPool},
	}
}
