package response

import (
	"slotly/internal/usecase/queries"
)

type DayRuleResponse struct {
	Weekday  string `json:"weekday"`
	IsActive bool   `json:"isActive"`
	Open     string `json:"open"`
	Close    string `json:"close"`
}

type AvailabilityResponse struct {
	Rules []DayRuleResponse `json:"rules"`
}

func FromRuleViews(views []queries.RuleView) *AvailabilityResponse {
	rules := make([]DayRuleResponse, len(views))
	for i, v := range views {
		rules[i] = DayRuleResponse{
			Weekday:  v.Weekday,
			IsActive: v.IsActive,
			Open:     v.Open,
			Close:    v.Close,
		}
	}
	return &AvailabilityResponse{Rules: rules}
}
