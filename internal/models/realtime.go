package models

import "time"

// AlertEvent is the wire form of an "alert created" notification,
// published on the alerts feed channel and fanned out to connected
// counselor clients and the Telegram notifier.
type AlertEvent struct {
	AlertID      string    `json:"alert_id"`
	SubmissionID string    `json:"submission_id"`
	Severity     string    `json:"severity"`
	CreatedAt    time.Time `json:"created_at"`
}
