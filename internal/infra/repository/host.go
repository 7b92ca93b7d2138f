package repository

import (
	"context"
	"errors"

	"slotly/internal/infra"
	"slotly/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HostRepository reads host accounts. Provisioning happens outside this
// service, so there are no writes here.
type HostRepository struct {
	db *pgxpool.Pool
}

func NewHostRepository(db *pgxpool.Pool) *HostRepository {
	return &HostRepository{db: db}
}

func (r *HostRepository) FindByUserName(ctx context.Context, userName string) (*usecase.HostRecord, error) {
	const query = `
		SELECT id, username, name, timezone
		FROM hosts
		WHERE username = $1`

	return r.scanHost(r.db.QueryRow(ctx, query, userName))
}

func (r *HostRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.HostRecord, error) {
	const query = `
		SELECT id, username, name, timezone
		FROM hosts
		WHERE id = $1`

	return r.scanHost(r.db.QueryRow(ctx, query, id))
}

func (r *HostRepository) scanHost(row pgx.Row) (*usecase.HostRecord, error) {
	var host usecase.HostRecord
	err := row.Scan(&host.ID, &host.UserName, &host.Name, &host.TimeZone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "host not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find host", err)
	}
	return &host, nil
}
