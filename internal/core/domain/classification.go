package domain

// HealthAssessment is the detailed health section of a classification.
type HealthAssessment struct {
	Status       string   `json:"status"`
	Confidence   float64  `json:"confidence"`
	Observations string   `json:"observations"`
	KeyIssues    []string `json:"key_issues"`
}

// Classification is the normalized envelope returned by the AI service. A
// fallback response is structurally identical to a genuine one; only Message
// hints at degraded operation.
type Classification struct {
	Result           ScanResult       `json:"result"`
	Confidence       float64          `json:"confidence"`
	AnimalType       string           `json:"animal_type"`
	Message          string           `json:"message,omitempty"`
	ScanID           int64            `json:"scanId,omitempty"`
	HealthAssessment HealthAssessment `json:"health_assessment"`
	Recommendations  Recommendations  `json:"recommendations"`
}
