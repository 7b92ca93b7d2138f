package availability

import (
	"errors"
	"time"
)

var (
	ErrEmptyWindow       = errors.New("open time must be before close time")
	ErrIncompleteRuleSet = errors.New("rule set must cover all seven weekdays")
	ErrDuplicateWeekday  = errors.New("duplicate weekday in rule set")
)

// Rule is the recurring availability window for one weekday. Rules are bound
// to weekdays by explicit key, never by position, so reordering the stored
// rows cannot silently shift a host's week.
type Rule struct {
	weekday time.Weekday
	active  bool
	open    ClockTime
	close   ClockTime
}

func NewRule(weekday time.Weekday, active bool, open, close ClockTime) (Rule, error) {
	if active && !open.Before(close) {
		return Rule{}, ErrEmptyWindow
	}
	return Rule{weekday: weekday, active: active, open: open, close: close}, nil
}

// DefaultRule is the onboarding default: 08:00-18:00, active.
func DefaultRule(weekday time.Weekday) Rule {
	open, _ := NewClockTime(8, 0)
	close, _ := NewClockTime(18, 0)
	return Rule{weekday: weekday, active: true, open: open, close: close}
}

func (r Rule) Weekday() time.Weekday { return r.weekday }
func (r Rule) IsActive() bool        { return r.active }
func (r Rule) Open() ClockTime       { return r.open }
func (r Rule) Close() ClockTime      { return r.close }

// Window is the open-to-close span. Zero for inactive days.
func (r Rule) Window() time.Duration {
	if !r.active {
		return 0
	}
	return r.close.Sub(r.open)
}

// RuleSet is a host's full week of rules, one per weekday. Days are only ever
// deactivated, never removed, so a valid set always has seven entries.
type RuleSet struct {
	rules map[time.Weekday]Rule
}

func NewRuleSet(rules []Rule) (RuleSet, error) {
	byDay := make(map[time.Weekday]Rule, 7)
	for _, r := range rules {
		if _, ok := byDay[r.weekday]; ok {
			return RuleSet{}, ErrDuplicateWeekday
		}
		byDay[r.weekday] = r
	}
	if len(byDay) != 7 {
		return RuleSet{}, ErrIncompleteRuleSet
	}
	return RuleSet{rules: byDay}, nil
}

func DefaultRuleSet() RuleSet {
	byDay := make(map[time.Weekday]Rule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		byDay[d] = DefaultRule(d)
	}
	return RuleSet{rules: byDay}
}

func (s RuleSet) RuleFor(weekday time.Weekday) Rule {
	return s.rules[weekday]
}

// Rules returns the week Monday-first, the order hosts see it.
func (s RuleSet) Rules() []Rule {
	week := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]Rule, 0, 7)
	for _, d := range week {
		out = append(out, s.rules[d])
	}
	return out
}
