package domain

import (
	"errors"
	"time"
)

// ScanResult is the normalized health outcome of a scan.
type ScanResult string

const (
	ResultHealthy     ScanResult = "healthy"
	ResultTreatable   ScanResult = "treatable"
	ResultUntreatable ScanResult = "untreatable"
)

var ErrNoImage = errors.New("no image file provided")
var ErrInvalidUpload = errors.New("invalid file type")
var ErrUploadTooLarge = errors.New("file exceeds maximum size")

// ValidResult reports whether r is one of the three known outcomes.
func ValidResult(r ScanResult) bool {
	return r == ResultHealthy || r == ResultTreatable || r == ResultUntreatable
}

// Recommendations carries the treatment guidance attached to a scan.
type Recommendations struct {
	Treatable        bool   `json:"treatable"`
	Message          string `json:"message"`
	MonitoringAdvice string `json:"monitoring_advice"`
}

// Scan is an immutable record of a single scan submission. Only Reviewed may
// change after creation.
type Scan struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	AnimalID        string          `json:"animalId,omitempty"`
	Result          ScanResult      `json:"result"`
	Confidence      float64         `json:"confidence"`
	ImagePath       string          `json:"imagePath"`
	Notes           string          `json:"notes"`
	Timestamp       time.Time       `json:"timestamp"`
	Reviewed        bool            `json:"reviewed"`
	AnimalType      string          `json:"animalType"`
	Observations    string          `json:"observations"`
	KeyIssues       []string        `json:"keyIssues"`
	Recommendations Recommendations `json:"recommendations"`
}
