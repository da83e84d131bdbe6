// Package moderation provides the counselor-facing queue over flagged
// forum submissions and the approve/reject/escalate decision flow.
package moderation

import (
	"errors"

	"manmitra/backend/internal/classifier"
	"manmitra/backend/internal/config"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"
)

var (
	// ErrInvalidFilter is returned for an unknown queue filter.
	ErrInvalidFilter = errors.New("invalid moderation queue filter")
	// ErrUnknownAction is returned for an action outside
	// approve/reject/escalate.
	ErrUnknownAction = errors.New("unknown moderation action")
	// ErrSeverityTooLow is returned when escalate is attempted on a
	// submission below the medium severity tier.
	ErrSeverityTooLow = errors.New("submission severity too low to escalate")
)

// Queue filters.
const (
	FilterAll       = "all"
	FilterPending   = "pending"
	FilterFlagged   = "flagged"
	FilterEscalated = "escalated"
	FilterApproved  = "approved"
	FilterRejected  = "rejected"
)

// Service handles the business logic for the moderation queue.
type Service struct {
	Storage    storage.Storage
	Escalation *escalation.Service
}

// NewService creates a new moderation service.
func NewService(s storage.Storage, esc *escalation.Service) *Service {
	return &Service{Storage: s, Escalation: esc}
}

// List returns forum submissions matching the filter, newest first.
// "flagged" means severity at least medium or any matched reasons.
func (s *Service) List(filter string) ([]models.TextSubmission, error) {
	switch filter {
	case "", FilterAll:
		return s.Storage.ListSubmissionsBySource(models.SourceForum)
	case FilterFlagged:
		return s.Storage.ListFlaggedSubmissions(models.SourceForum)
	case FilterPending, FilterEscalated, FilterApproved, FilterRejected:
		return s.Storage.ListSubmissionsByStatus(models.SourceForum, filter)
	default:
		return nil, ErrInvalidFilter
	}
}

// Decide appends a moderation decision for the given post and updates
// its displayed status. Escalation is only permitted for submissions
// of at least medium severity; this is enforced here, not in the UI.
// A reject decision also mutes the author for RejectMuteDuration.
func (s *Service) Decide(postID, action, reason, moderatorRef string) (*models.ModerationDecision, error) {
	sub, err := s.Storage.GetSubmissionByID(postID)
	if err != nil {
		return nil, err
	}

	var status string
	switch action {
	case models.ActionApprove:
		status = models.SubmissionApproved
	case models.ActionReject:
		status = models.SubmissionRejected
	case models.ActionEscalate:
		if !classifier.AtLeast(sub.Severity, classifier.SeverityMedium) {
			return nil, ErrSeverityTooLow
		}
		status = models.SubmissionEscalated
	default:
		return nil, ErrUnknownAction
	}

	if action == models.ActionEscalate {
		if _, err := s.Escalation.CreateAlert(sub); err != nil {
			return nil, err
		}
	}

	decision := &models.ModerationDecision{
		PostID:       postID,
		Action:       action,
		Reason:       reason,
		ModeratorRef: moderatorRef,
	}
	if err := s.Storage.SaveDecision(decision); err != nil {
		return nil, err
	}
	if err := s.Storage.UpdateSubmissionStatus(postID, status); err != nil {
		return nil, err
	}

	if action == models.ActionReject {
		if err := s.Storage.MuteAuthor(sub.AuthorRef, config.RejectMuteDuration); err != nil {
			return nil, err
		}
	}

	return decision, nil
}

// History returns the full decision history for a post, oldest first.
func (s *Service) History(postID string) ([]models.ModerationDecision, error) {
	if _, err := s.Storage.GetSubmissionByID(postID); err != nil {
		return nil, err
	}
	return s.Storage.GetDecisionsForPost(postID)
}
