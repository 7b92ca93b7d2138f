package commands

import (
	"context"
	"time"

	"slotly/internal/domain/availability"
	"slotly/internal/pkg/errs"
	"slotly/internal/usecase"

	"github.com/google/uuid"
)

// RuleChange is one weekday's submitted availability. The weekday key is
// explicit; the store never relies on submission order.
type RuleChange struct {
	Weekday  time.Weekday
	IsActive bool
	Open     string // "HH:MM"
	Close    string // "HH:MM"
}

type AvailabilityCommands interface {
	UpdateRules(ctx context.Context, hostID uuid.UUID, changes []RuleChange) error
	SeedDefaults(ctx context.Context, hostID uuid.UUID) error
}

type availabilityCommandsImpl struct {
	rules usecase.AvailabilityRepository
}

func NewAvailabilityCommands(rules usecase.AvailabilityRepository) AvailabilityCommands {
	return &availabilityCommandsImpl{rules: rules}
}

// UpdateRules replaces the host's full week. All seven weekdays must be
// present; days are deactivated rather than omitted.
func (a *availabilityCommandsImpl) UpdateRules(ctx context.Context, hostID uuid.UUID, changes []RuleChange) error {
	rules := make([]availability.Rule, 0, len(changes))
	for _, ch := range changes {
		open, err := availability.ParseClockTime(ch.Open)
		if err != nil {
			return errs.Mark(err, ErrInvalidAvailability)
		}
		close, err := availability.ParseClockTime(ch.Close)
		if err != nil {
			return errs.Mark(err, ErrInvalidAvailability)
		}
		rule, err := availability.NewRule(ch.Weekday, ch.IsActive, open, close)
		if err != nil {
			return errs.Mark(err, ErrInvalidAvailability)
		}
		rules = append(rules, rule)
	}

	if _, err := availability.NewRuleSet(rules); err != nil {
		return errs.Mark(err, ErrInvalidAvailability)
	}

	return a.rules.UpdateRules(ctx, hostID, rules)
}

// SeedDefaults writes the onboarding default week, 08:00-18:00 every day.
func (a *availabilityCommandsImpl) SeedDefaults(ctx context.Context, hostID uuid.UUID) error {
	return a.rules.SeedDefaults(ctx, hostID)
}
