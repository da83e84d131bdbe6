package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq" // needed for pq.StringArray
	"gorm.io/gorm"
)

// Submission sources.
const (
	SourceChat  = "chat"
	SourceForum = "forum"
)

// Displayed moderation statuses for a submission. The status always
// reflects the most recent ModerationDecision; the decision history
// itself is never overwritten.
const (
	SubmissionPending   = "pending"
	SubmissionApproved  = "approved"
	SubmissionRejected  = "rejected"
	SubmissionEscalated = "escalated"
)

// TextSubmission is a single piece of user-authored text (a chat
// message or forum post) together with its classification result.
// Submissions are append-only: body, severity and reasons are set once
// at classification time and never mutated afterwards.
type TextSubmission struct {
	// SubmissionID is the unique identifier for the submission (UUID).
	SubmissionID string `gorm:"primaryKey" json:"id"`
	// AuthorRef identifies the submitter, or AnonymousAuthor.
	AuthorRef string `gorm:"type:text;not null;index" json:"author_ref"`
	// Body is the raw submitted text.
	Body string `gorm:"type:text;not null" json:"body"`
	// Language is the language code the text was classified under.
	Language string `gorm:"type:text;not null" json:"language"`
	// Source is SourceChat or SourceForum.
	Source string `gorm:"type:text;not null;index" json:"source"`
	// Severity is the classifier tier: none, low, medium or high.
	Severity string `gorm:"type:text;not null;index" json:"severity"`
	// MatchedReasons are the human-readable reason strings produced by
	// the classifier, in match order. May be empty.
	MatchedReasons pq.StringArray `gorm:"type:text[]" json:"matched_reasons"`
	// Status is the displayed moderation status derived from the most
	// recent decision.
	Status    string    `gorm:"type:text;not null;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate generates a new UUID for the submission if needed.
func (s *TextSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if s.SubmissionID == "" {
		s.SubmissionID = uuid.New().String()
	}
	return
}
