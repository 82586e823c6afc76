// Package metrics derives the dashboard summaries from flat record collections.
// Every function is a pure pass over its input and never mutates it.
package metrics

import (
	"math"

	"github.com/ortelius/command-center/model"
)

// minAverageHoursOpen is the display floor for the average open duration.
const minAverageHoursOpen = 0.1

// TicketSummary is the queue-level rollup shown on the command summary card.
type TicketSummary struct {
	Total            int     `json:"total" yaml:"total"`
	Open             int     `json:"open" yaml:"open"`
	Resolved         int     `json:"resolved" yaml:"resolved"`
	Critical         int     `json:"critical" yaml:"critical"`
	SLABreaches      int     `json:"sla_breaches" yaml:"sla_breaches"`
	AverageHoursOpen float64 `json:"average_hours_open" yaml:"average_hours_open"`
}

// TierDistribution splits the queue between first-line and specialist tiers.
type TierDistribution struct {
	Tier1    int `json:"tier1" yaml:"tier1"`
	Tier2    int `json:"tier2" yaml:"tier2"`
	Tier1Pct int `json:"tier1_pct" yaml:"tier1_pct"`
	Tier2Pct int `json:"tier2_pct" yaml:"tier2_pct"`
}

// GetTicketSummary counts open, resolved, P1 and SLA-breached tickets and the mean
// hours between creation and last update of the open ones.
//
// Critical and SLABreaches only consider open tickets. The average divides by one
// when nothing is open and is never reported below 0.1 hours.
func GetTicketSummary(tickets []model.Ticket) TicketSummary {
	summary := TicketSummary{Total: len(tickets)}

	var openMillis int64
	for _, ticket := range tickets {
		if !ticket.IsOpen() {
			summary.Resolved++
			continue
		}
		summary.Open++
		if ticket.Priority == model.PriorityP1 {
			summary.Critical++
		}
		if ticket.SLABreached {
			summary.SLABreaches++
		}
		openMillis += ticket.OpenDuration().Milliseconds()
	}

	hours := float64(openMillis) / float64(divisor(summary.Open)) / 1000 / 60 / 60
	summary.AverageHoursOpen = math.Max(hours, minAverageHoursOpen)

	return summary
}

// GetTierDistribution counts tickets per tier and expresses each count as a rounded
// percentage of the whole queue. The two percentages are rounded independently.
func GetTierDistribution(tickets []model.Ticket) TierDistribution {
	var dist TierDistribution
	for _, ticket := range tickets {
		switch ticket.Tier {
		case 1:
			dist.Tier1++
		case 2:
			dist.Tier2++
		}
	}

	dist.Tier1Pct = percent(dist.Tier1, len(tickets))
	dist.Tier2Pct = percent(dist.Tier2, len(tickets))
	return dist
}

// divisor substitutes 1 for an empty collection so averages degrade to zero.
func divisor(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

// percent is count/total*100 rounded half away from zero.
func percent(count, total int) int {
	return int(math.Round(float64(count) / float64(divisor(total)) * 100))
}

// mean is sum/n rounded half away from zero, or 0 for an empty collection.
func mean(sum, n int) int {
	return int(math.Round(float64(sum) / float64(divisor(n))))
}
