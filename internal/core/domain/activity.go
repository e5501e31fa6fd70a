package domain

import "time"

// Activity event kinds.
const (
	ActivityScanRecorded = "scan_recorded"
	ActivityAlertCreated = "alert_created"
	ActivityAlertRead    = "alert_read"
)

// ActivityEvent is an audit-trail entry recorded asynchronously after a
// user-visible operation completes.
type ActivityEvent struct {
	UserID    string
	Kind      string
	RefID     string // id of the scan or alert the event refers to
	Detail    string
	Timestamp time.Time
}
