package queries

import (
	"context"

	"slotly/internal/usecase"

	"github.com/google/uuid"
)

// RuleView is one weekday as the host's settings screen shows it. Open and
// close are wall-clock "HH:MM" in the host's zone.
type RuleView struct {
	Weekday  string `json:"weekday"`
	IsActive bool   `json:"is_active"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}

type AvailabilityQueries interface {
	GetWeek(ctx context.Context, hostID uuid.UUID) ([]RuleView, error)
}

type availabilityQueriesImpl struct {
	rules usecase.AvailabilityRepository
}

func NewAvailabilityQueries(rules usecase.AvailabilityRepository) AvailabilityQueries {
	return &availabilityQueriesImpl{rules: rules}
}

func (q *availabilityQueriesImpl) GetWeek(ctx context.Context, hostID uuid.UUID) ([]RuleView, error) {
	ruleSet, err := q.rules.RulesByHost(ctx, hostID)
	if err != nil {
		return nil, markRepoErr(err, ErrAvailabilityNotFound)
	}

	views := make([]RuleView, 0, 7)
	for _, rule := range ruleSet.Rules() {
		views = append(views, RuleView{
			Weekday:  rule.Weekday().String(),
			IsActive: rule.IsActive(),
			Open:     rule.Open().String(),
			Close:    rule.Close().String(),
		})
	}
	return views, nil
}
