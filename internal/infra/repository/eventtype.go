package repository

import (
	"context"
	"errors"
	"time"

	"slotly/internal/domain/eventtype"
	"slotly/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

type EventTypeRepository struct {
	db *pgxpool.Pool
}

func NewEventTypeRepository(db *pgxpool.Pool) *EventTypeRepository {
	return &EventTypeRepository{db: db}
}

func (r *EventTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*eventtype.EventType, error) {
	const query = `
		SELECT id, host_id, title, description, url, duration_minutes, provider, active, created_at, updated_at
		FROM event_types
		WHERE id = $1`

	return scanEventType(r.db.QueryRow(ctx, query, id))
}

func (r *EventTypeRepository) FindActiveByHostAndURL(ctx context.Context, hostID uuid.UUID, url string) (*eventtype.EventType, error) {
	const query = `
		SELECT id, host_id, title, description, url, duration_minutes, provider, active, created_at, updated_at
		FROM event_types
		WHERE host_id = $1 AND url = $2 AND active`

	return scanEventType(r.db.QueryRow(ctx, query, hostID, url))
}

func (r *EventTypeRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]*eventtype.EventType, error) {
	const query = `
		SELECT id, host_id, title, description, url, duration_minutes, provider, active, created_at, updated_at
		FROM event_types
		WHERE host_id = $1
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query event types", err)
	}
	defer rows.Close()

	var out []*eventtype.EventType
	for rows.Next() {
		e, err := scanEventType(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read event types", err)
	}
	return out, nil
}

func (r *EventTypeRepository) Create(ctx context.Context, e *eventtype.EventType) error {
	const query = `
		INSERT INTO event_types (id, host_id, title, description, url, duration_minutes, provider, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`

	_, err := r.db.Exec(ctx, query,
		e.ID(), e.HostID(), e.Title(), e.Description(), e.URL(),
		e.DurationMinutes(), e.Provider(), e.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "event type url already taken", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create event type", err)
	}
	return nil
}

func (r *EventTypeRepository) Update(ctx context.Context, e *eventtype.EventType) error {
	const query = `
		UPDATE event_types
		SET title = $2, description = $3, url = $4, duration_minutes = $5, provider = $6, active = $7, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		e.ID(), e.Title(), e.Description(), e.URL(),
		e.DurationMinutes(), e.Provider(), e.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "event type url already taken", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "event type not found", pgx.ErrNoRows)
	}
	return nil
}

func (r *EventTypeRepository) Delete(ctx context.Context, hostID, id uuid.UUID) error {
	const query = `DELETE FROM event_types WHERE id = $1 AND host_id = $2`

	tag, err := r.db.Exec(ctx, query, id, hostID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete event type", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "event type not found", pgx.ErrNoRows)
	}
	return nil
}

func scanEventType(row pgx.Row) (*eventtype.EventType, error) {
	var (
		id, hostID              uuid.UUID
		title, description, url string
		durationMinutes         int
		provider                string
		active                  bool
		createdAt, updatedAt    time.Time
	)
	err := row.Scan(&id, &hostID, &title, &description, &url, &durationMinutes, &provider, &active, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "event type not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan event type", err)
	}
	return eventtype.Reconstruct(id, hostID, title, description, url, durationMinutes, provider, active, createdAt, updatedAt), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
