package models

import "gorm.io/gorm"

// Moderation actions a counselor or admin may take on a forum post.
const (
	ActionApprove  = "approve"
	ActionReject   = "reject"
	ActionEscalate = "escalate"
)

// ModerationDecision records one moderator action on a submission.
// A submission accumulates decisions over its life; only the most
// recent determines its displayed status, but all are kept for audit.
type ModerationDecision struct {
	gorm.Model

	// PostID is the submission the decision applies to.
	PostID string `gorm:"type:uuid;not null;index"`
	// Action is ActionApprove, ActionReject or ActionEscalate.
	Action string `gorm:"type:text;not null"`
	// Reason is the moderator's stated reason.
	Reason string `gorm:"type:text"`
	// ModeratorRef identifies the deciding moderator.
	ModeratorRef string `gorm:"type:text;not null"`
}
