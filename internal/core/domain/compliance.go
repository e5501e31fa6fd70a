package domain

import "time"

// ComplianceStatus is the review state of a submitted compliance document.
type ComplianceStatus string

const (
	CompliancePending  ComplianceStatus = "pending"
	ComplianceApproved ComplianceStatus = "approved"
	ComplianceRejected ComplianceStatus = "rejected"
)

// ComplianceRecord is a document submitted for regulatory review. ReviewedBy
// and ReviewedAt are set by a future admin review capability; no endpoint
// mutates them today.
type ComplianceRecord struct {
	ID           string           `json:"id"`
	UserID       string           `json:"userId"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Category     string           `json:"category"`
	DocumentPath string           `json:"documentPath,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	Status       ComplianceStatus `json:"status"`
	ReviewedBy   string           `json:"reviewedBy,omitempty"`
	ReviewedAt   *time.Time       `json:"reviewedAt,omitempty"`
}
