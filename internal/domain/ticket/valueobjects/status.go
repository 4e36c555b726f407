package valueobjects

import (
	"fmt"
	"strings"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusAssigned   TicketStatus = "ASSIGNED"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusCompleted  TicketStatus = "COMPLETED"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:       true,
	StatusAssigned:   true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusAssigned,
	},
	StatusAssigned: {
		StatusInProgress,
		StatusOpen,
	},
	StatusInProgress: {
		StatusCompleted,
		StatusAssigned,
	},
	StatusCompleted: {
		StatusInProgress,
	},
}

// AllStatuses lists statuses in workflow order.
var AllStatuses = []TicketStatus{StatusOpen, StatusAssigned, StatusInProgress, StatusCompleted}

func (ts TicketStatus) String() string {
	return string(ts)
}

// Label is the human form used in notifications, e.g. "IN PROGRESS".
func (ts TicketStatus) Label() string {
	return strings.ReplaceAll(string(ts), "_", " ")
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	allowedTransitions, ok := ticketStatusTransitions[ts]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the outgoing edges of ts.
func (ts TicketStatus) AllowedTransitions() []TicketStatus {
	allowed := ticketStatusTransitions[ts]
	out := make([]TicketStatus, len(allowed))
	copy(out, allowed)
	return out
}

func (ts TicketStatus) IsOpen() bool {
	return ts == StatusOpen
}

func (ts TicketStatus) IsAssigned() bool {
	return ts == StatusAssigned
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsCompleted() bool {
	return ts == StatusCompleted
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

// IsValidStatus is the string predicate used by request validation.
func IsValidStatus(s string) bool {
	return TicketStatus(s).IsValid()
}
