package batch

import "github.com/poiesic/careguide/core"

// Summary aggregates the best candidates of a batch.
type Summary struct {
	Total       int                       `json:"total"`
	Emergencies int                       `json:"emergencies"`
	ByCondition map[string]int            `json:"by_condition"`
	ByUrgency   map[core.UrgencyLevel]int `json:"by_urgency"`
}

// Summarize counts outcomes by condition and urgency.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{
		Total:       len(outcomes),
		ByCondition: make(map[string]int),
		ByUrgency:   make(map[core.UrgencyLevel]int),
	}
	for _, o := range outcomes {
		best := o.Assessment.Triage.Best
		s.ByCondition[best.ConditionKey]++
		s.ByUrgency[best.Urgency]++
		if best.Emergency {
			s.Emergencies++
		}
	}
	return s
}
