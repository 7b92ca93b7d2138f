package request

import (
	"errors"
	"time"

	"slotly/internal/usecase/commands"
)

var errUnknownWeekday = errors.New("unknown weekday")

type DayRuleRequest struct {
	Weekday  string `json:"weekday" binding:"required"`
	IsActive bool   `json:"is_active"`
	Open     string `json:"open" binding:"required"`  // "HH:MM"
	Close    string `json:"close" binding:"required"` // "HH:MM"
}

// UpdateAvailabilityRequest carries the full week. Weekdays are named, not
// positional, so clients cannot shift a host's schedule by reordering.
type UpdateAvailabilityRequest struct {
	Rules []DayRuleRequest `json:"rules" binding:"required,len=7,dive"`
}

var weekdaysByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func (r UpdateAvailabilityRequest) ToChanges() ([]commands.RuleChange, error) {
	changes := make([]commands.RuleChange, 0, len(r.Rules))
	for _, rule := range r.Rules {
		weekday, ok := weekdaysByName[rule.Weekday]
		if !ok {
			return nil, errUnknownWeekday
		}
		changes = append(changes, commands.RuleChange{
			Weekday:  weekday,
			IsActive: rule.IsActive,
			Open:     rule.Open,
			Close:    rule.Close,
		})
	}
	return changes, nil
}
