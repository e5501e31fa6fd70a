package domain

import (
	"errors"
	"time"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// AlertTypeHealth is the only alert type currently produced; it originates
// from the scan workflow when a scan result is not healthy.
const AlertTypeHealth = "health_alert"

var ErrAlertNotFound = errors.New("alert not found")

// Alert notifies an owner about a problematic scan. Only Read may change
// after creation.
type Alert struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Priority  string    `json:"priority"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
