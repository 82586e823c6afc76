package metrics

import (
	"fmt"
	"strings"

	"github.com/ortelius/command-center/model"
)

// TierSelector is the tier toggle of the ticket queue.
type TierSelector string

const (
	TierAll TierSelector = "All"
	Tier1   TierSelector = "Tier 1"
	Tier2   TierSelector = "Tier 2"
)

// TierSelectors lists the toggle options in display order.
var TierSelectors = []TierSelector{TierAll, Tier1, Tier2}

// StatusSelector is the status dropdown of the ticket queue: StatusAll or one ticket status.
type StatusSelector string

// StatusAll matches every status.
const StatusAll StatusSelector = "All"

// StatusSelectors lists the dropdown options in display order.
func StatusSelectors() []StatusSelector {
	selectors := []StatusSelector{StatusAll}
	for _, status := range model.TicketStatuses {
		selectors = append(selectors, StatusSelector(status))
	}
	return selectors
}

// ParseTierSelector accepts "All", "Tier 1", "Tier 2" (any case) or the bare tier
// numbers "1" and "2". An empty string selects all tiers.
func ParseTierSelector(s string) (TierSelector, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "", strings.EqualFold(s, string(TierAll)):
		return TierAll, nil
	case s == "1", strings.EqualFold(s, string(Tier1)):
		return Tier1, nil
	case s == "2", strings.EqualFold(s, string(Tier2)):
		return Tier2, nil
	}
	return "", fmt.Errorf("%w: tier %q", ErrInvalidSelector, s)
}

// ParseStatusSelector accepts "All" or a ticket status, case-insensitively.
// An empty string selects all statuses.
func ParseStatusSelector(s string) (StatusSelector, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(StatusAll)) {
		return StatusAll, nil
	}
	for _, status := range model.TicketStatuses {
		if strings.EqualFold(s, string(status)) {
			return StatusSelector(status), nil
		}
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidSelector, s)
}

// Matches reports whether ticket belongs to the selected tier.
// An unrecognized selector matches nothing.
func (t TierSelector) Matches(ticket model.Ticket) bool {
	switch t {
	case TierAll:
		return true
	case Tier1:
		return ticket.Tier == 1
	case Tier2:
		return ticket.Tier == 2
	}
	return false
}

// Matches reports whether ticket has the selected status.
func (s StatusSelector) Matches(ticket model.Ticket) bool {
	return s == StatusAll || string(ticket.Status) == string(s)
}

// FilterTickets returns the tickets matching both selectors in their original order.
// The result is a new slice; tickets is never modified.
func FilterTickets(tickets []model.Ticket, tier TierSelector, status StatusSelector) []model.Ticket {
	filtered := make([]model.Ticket, 0, len(tickets))
	for _, ticket := range tickets {
		if tier.Matches(ticket) && status.Matches(ticket) {
			filtered = append(filtered, ticket)
		}
	}
	return filtered
}
