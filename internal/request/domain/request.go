package domain

import "time"

// Request statuses form a simple forward-moving workflow; closed requests
// accept no further status edits.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

type ServiceRequest struct {
	ID          string
	ClientID    string
	AssigneeID  *string
	Title       string
	Description string
	Category    string
	Priority    string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Comment struct {
	ID        string
	RequestID string
	AuthorID  string
	Body      string
	CreatedAt time.Time
}

type Notification struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	ReadAt    *time.Time
	CreatedAt time.Time
}

// StatusCount is one row of the reporting aggregation.
type StatusCount struct {
	Status   string
	Priority string
	Count    int
}

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
