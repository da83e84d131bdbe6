package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CrisisAlert lifecycle states. Transitions are strictly forward:
// pending -> acknowledged -> resolved. Alerts are never deleted.
const (
	AlertPending      = "pending"
	AlertAcknowledged = "acknowledged"
	AlertResolved     = "resolved"
)

// CrisisAlert is created exactly once when a submission crosses the
// escalation threshold, or when a moderator escalates explicitly.
type CrisisAlert struct {
	// AlertID is the unique identifier for the alert (UUID).
	AlertID string `gorm:"primaryKey" json:"id"`
	// SourceSubmissionID is a lookup reference to the submission that
	// triggered the alert, never an ownership pointer.
	SourceSubmissionID string `gorm:"type:uuid;not null;index" json:"source_submission_id"`
	// Severity is copied from the triggering submission at creation
	// time and is not re-derived later.
	Severity string `gorm:"type:text;not null" json:"severity"`
	// Status is one of AlertPending, AlertAcknowledged, AlertResolved.
	Status    string    `gorm:"type:text;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	// HandledAt is set when a counselor acknowledges the alert.
	HandledAt *time.Time `json:"handled_at,omitempty"`
	// HandledBy is the counselor who acknowledged the alert.
	HandledBy string `gorm:"type:text" json:"handled_by,omitempty"`
	// ResolutionNotes are mandatory at resolve time.
	ResolutionNotes string `gorm:"type:text" json:"resolution_notes,omitempty"`
}

// BeforeCreate generates a new UUID for the alert if needed.
func (a *CrisisAlert) BeforeCreate(tx *gorm.DB) (err error) {
	if a.AlertID == "" {
		a.AlertID = uuid.New().String()
	}
	return
}
