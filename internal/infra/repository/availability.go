package repository

import (
	"context"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AvailabilityRepository stores one row per (host, weekday). Times are kept
// as "HH:MM" text in the host's zone; they only become instants when a
// concrete date is resolved.
type AvailabilityRepository struct {
	db *pgxpool.Pool
}

func NewAvailabilityRepository(db *pgxpool.Pool) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

func (r *AvailabilityRepository) RulesByHost(ctx context.Context, hostID uuid.UUID) (availability.RuleSet, error) {
	const query = `
		SELECT weekday, is_active, open_time, close_time
		FROM availability_rules
		WHERE host_id = $1`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		return availability.RuleSet{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to query availability rules", err)
	}
	defer rows.Close()

	var rules []availability.Rule
	for rows.Next() {
		var (
			weekday           int
			isActive          bool
			openStr, closeStr string
		)
		if err := rows.Scan(&weekday, &isActive, &openStr, &closeStr); err != nil {
			return availability.RuleSet{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan availability rule", err)
		}
		rule, err := buildRule(time.Weekday(weekday), isActive, openStr, closeStr)
		if err != nil {
			return availability.RuleSet{}, infra.WrapRepoErr(infra.KindDBFailure, "stored availability rule is corrupt", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return availability.RuleSet{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to read availability rules", err)
	}
	if len(rules) == 0 {
		return availability.RuleSet{}, infra.WrapRepoErr(infra.KindNotFound, "availability rules not found", pgx.ErrNoRows)
	}

	set, err := availability.NewRuleSet(rules)
	if err != nil {
		return availability.RuleSet{}, infra.WrapRepoErr(infra.KindDBFailure, "stored availability week is incomplete", err)
	}
	return set, nil
}

// UpdateRules replaces the host's week in one transaction. Upserting keyed on
// (host_id, weekday) keeps the seven-row shape regardless of what existed.
func (r *AvailabilityRepository) UpdateRules(ctx context.Context, hostID uuid.UUID, rules []availability.Rule) error {
	const query = `
		INSERT INTO availability_rules (host_id, weekday, is_active, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (host_id, weekday)
		DO UPDATE SET is_active = $3, open_time = $4, close_time = $5`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	for _, rule := range rules {
		_, err := tx.Exec(ctx, query,
			hostID,
			int(rule.Weekday()),
			rule.IsActive(),
			rule.Open().String(),
			rule.Close().String(),
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert availability rule", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit availability rules", err)
	}
	return nil
}

// SeedDefaults writes the onboarding week only where no rules exist yet.
func (r *AvailabilityRepository) SeedDefaults(ctx context.Context, hostID uuid.UUID) error {
	const query = `
		INSERT INTO availability_rules (host_id, weekday, is_active, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (host_id, weekday) DO NOTHING`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	for _, rule := range availability.DefaultRuleSet().Rules() {
		_, err := tx.Exec(ctx, query,
			hostID,
			int(rule.Weekday()),
			rule.IsActive(),
			rule.Open().String(),
			rule.Close().String(),
		)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "failed to seed availability rule", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to commit default availability", err)
	}
	return nil
}

func buildRule(weekday time.Weekday, active bool, openStr, closeStr string) (availability.Rule, error) {
	open, err := availability.ParseClockTime(openStr)
	if err != nil {
		return availability.Rule{}, err
	}
	close, err := availability.ParseClockTime(closeStr)
	if err != nil {
		return availability.Rule{}, err
	}
	return availability.NewRule(weekday, active, open, close)
}
