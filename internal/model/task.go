package model

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// Task is a single to-do item.
type Task struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	Done           bool        `json:"done"`
	Priority       Priority    `json:"priority"`
	EstimatedTime  int         `json:"estimated_time,omitempty"` // minutes
	EnergyRequired EnergyLevel `json:"energy_required"`
	Tags           []string    `json:"tags,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	CompletedAt    *time.Time  `json:"completed_at,omitempty"`
}

// CompletedOn reports whether the task was completed on the given calendar day.
func (t *Task) CompletedOn(day time.Time) bool {
	if t.CompletedAt == nil {
		return false
	}
	y1, m1, d1 := t.CompletedAt.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
