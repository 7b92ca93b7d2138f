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

// IdentityRepository reads the host's calendar link and OAuth credentials.
// Tokens are written by the OAuth connect flow, which lives outside the
// booking engine.
type IdentityRepository struct {
	db *pgxpool.Pool
}

func NewIdentityRepository(db *pgxpool.Pool) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) FindByHost(ctx context.Context, hostID uuid.UUID) (*usecase.ProviderIdentity, error) {
	const query = `
		SELECT host_id, calendar_id, access_token, refresh_token, token_expiry
		FROM provider_identities
		WHERE host_id = $1`

	var identity usecase.ProviderIdentity
	err := r.db.QueryRow(ctx, query, hostID).Scan(
		&identity.HostID,
		&identity.CalendarID,
		&identity.AccessToken,
		&identity.RefreshToken,
		&identity.TokenExpiry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "provider identity not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find provider identity", err)
	}
	return &identity, nil
}
