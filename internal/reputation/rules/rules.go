// Package rules holds the automatic badge thresholds evaluated after every
// aggregate recompute.
package rules

import (
	idmodels "casebook/internal/identity/models"
)

// Metric names the user aggregate a rule reads.
type Metric string

const (
	MetricSolvedCases Metric = "solved_cases"
	MetricRating      Metric = "rating"
	MetricActiveCases Metric = "active_cases"
)

// Rule unlocks BadgeName once the user's aggregate reaches the threshold.
// Rating rules also require MinRatings ratings.
type Rule struct {
	BadgeName  string
	Metric     Metric
	Count      int
	MinAverage float64
	MinRatings int
	Perfect    bool
}

// Default is the built-in rule set.
var Default = []Rule{
	{BadgeName: "First Case Solver", Metric: MetricSolvedCases, Count: 1},
	{BadgeName: "Case Solver", Metric: MetricSolvedCases, Count: 5},
	{BadgeName: "Experienced Solver", Metric: MetricSolvedCases, Count: 10},
	{BadgeName: "Veteran Solver", Metric: MetricSolvedCases, Count: 25},
	{BadgeName: "Master Solver", Metric: MetricSolvedCases, Count: 50},
	{BadgeName: "Legendary Solver", Metric: MetricSolvedCases, Count: 100},
	{BadgeName: "Highly Rated", Metric: MetricRating, MinAverage: 4.5, MinRatings: 5},
	{BadgeName: "Excellence", Metric: MetricRating, MinAverage: 4.8, MinRatings: 10},
	{BadgeName: "Perfect Score", Metric: MetricRating, Perfect: true, MinRatings: 5},
	{BadgeName: "Active Participant", Metric: MetricActiveCases, Count: 3},
	{BadgeName: "Dedicated Solver", Metric: MetricActiveCases, Count: 5},
}

func (r Rule) Satisfied(u *idmodels.User) bool {
	switch r.Metric {
	case MetricSolvedCases:
		return u.SolvedCasesCount >= r.Count
	case MetricActiveCases:
		return u.ActiveCasesCount >= r.Count
	case MetricRating:
		if u.TotalRatings < r.MinRatings {
			return false
		}
		if r.Perfect {
			return u.AverageRating == 5.0
		}
		return u.AverageRating >= r.MinAverage
	}
	return false
}

// Unlocked returns the names of every rule u satisfies, in rule order.
func Unlocked(rules []Rule, u *idmodels.User) []string {
	var names []string
	for _, r := range rules {
		if r.Satisfied(u) {
			names = append(names, r.BadgeName)
		}
	}
	return names
}
