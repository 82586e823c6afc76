// Package model defines the read-only records rendered by the command center,
// including tickets, vulnerabilities, endpoints and the display-only collections.
package model

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	// TicketStatusNew is a ticket nobody has picked up yet.
	TicketStatusNew TicketStatus = "New"
	// TicketStatusInProgress is a ticket an analyst is actively working.
	TicketStatusInProgress TicketStatus = "In Progress"
	// TicketStatusWaiting is a ticket blocked on the requester or a third party.
	TicketStatusWaiting TicketStatus = "Waiting"
	// TicketStatusResolved is a closed ticket.
	TicketStatusResolved TicketStatus = "Resolved"
	// TicketStatusEscalated is a ticket handed to a specialist queue.
	TicketStatusEscalated TicketStatus = "Escalated"
)

// TicketStatuses lists the statuses in the order the status selector offers them.
var TicketStatuses = []TicketStatus{
	TicketStatusNew,
	TicketStatusInProgress,
	TicketStatusWaiting,
	TicketStatusEscalated,
	TicketStatusResolved,
}

// Valid reports whether s is one of the known statuses.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusNew, TicketStatusInProgress, TicketStatusWaiting, TicketStatusResolved, TicketStatusEscalated:
		return true
	}
	return false
}

// Priority is the P1-P4 urgency of a ticket.
type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

// Priorities lists the priorities from most to least urgent.
var Priorities = []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityP1, PriorityP2, PriorityP3, PriorityP4:
		return true
	}
	return false
}

// Severity maps a ticket priority onto the vulnerability severity scale used for badges.
func (p Priority) Severity() Severity {
	switch p {
	case PriorityP1:
		return SeverityCritical
	case PriorityP2:
		return SeverityHigh
	case PriorityP3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Category groups tickets by the kind of work involved.
type Category string

const (
	CategoryAccess     Category = "Access"
	CategoryHardware   Category = "Hardware"
	CategorySoftware   Category = "Software"
	CategorySecurity   Category = "Security"
	CategoryNetworking Category = "Networking"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAccess, CategoryHardware, CategorySoftware, CategorySecurity, CategoryNetworking:
		return true
	}
	return false
}

// Platform is the operating system or device family a ticket was raised from.
type Platform string

const (
	PlatformWindows11 Platform = "Windows 11"
	PlatformWindows10 Platform = "Windows 10"
	PlatformMacOS14   Platform = "macOS 14"
	PlatformMacOS13   Platform = "macOS 13"
	PlatformIOS       Platform = "iOS"
	PlatformAndroid   Platform = "Android"
	PlatformNetwork   Platform = "Network"
)

// Valid reports whether p is one of the known ticket platforms.
func (p Platform) Valid() bool {
	switch p {
	case PlatformWindows11, PlatformWindows10, PlatformMacOS14, PlatformMacOS13, PlatformIOS, PlatformAndroid, PlatformNetwork:
		return true
	}
	return false
}

// Integration is the ticketing system a record was synchronized from.
type Integration string

const (
	IntegrationServiceNow   Integration = "ServiceNow"
	IntegrationJira         Integration = "Jira"
	IntegrationFreshservice Integration = "Freshservice"
)

// Valid reports whether i is one of the known integrations.
func (i Integration) Valid() bool {
	switch i {
	case IntegrationServiceNow, IntegrationJira, IntegrationFreshservice:
		return true
	}
	return false
}

// Ticket is a support request synchronized from one of the ticketing integrations.
type Ticket struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Requester   string       `json:"requester" yaml:"requester"`
	Device      string       `json:"device" yaml:"device"`
	Platform    Platform     `json:"platform" yaml:"platform"`
	Category    Category     `json:"category" yaml:"category"`
	Tier        int          `json:"tier" yaml:"tier"` // 1 = first-line triage, 2 = specialist escalation
	Status      TicketStatus `json:"status" yaml:"status"`
	Priority    Priority     `json:"priority" yaml:"priority"`
	Integration Integration  `json:"integration" yaml:"integration"`
	CreatedAt   time.Time    `json:"created_at" yaml:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" yaml:"updated_at"`
	SLABreached bool         `json:"sla_breached" yaml:"sla_breached"`
	Description string       `json:"description" yaml:"description"`
}

// IsOpen reports whether the ticket still counts against the queue.
func (t Ticket) IsOpen() bool {
	return t.Status != TicketStatusResolved
}

// OpenDuration is the time between creation and the last update.
func (t Ticket) OpenDuration() time.Duration {
	return t.UpdatedAt.Sub(t.CreatedAt)
}
