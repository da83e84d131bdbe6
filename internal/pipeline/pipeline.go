// Package pipeline wraps user-submitted text: it invokes the keyword
// classifier, persists the classified submission, and hands
// high-severity results to the escalation workflow.
package pipeline

import (
	"errors"
	"log"
	"strings"

	"manmitra/backend/internal/classifier"
	"manmitra/backend/internal/config"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/localization"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"
)

var (
	// ErrEmptyBody is returned when a submission carries no text.
	ErrEmptyBody = errors.New("submission body must not be empty")
	// ErrInvalidSource is returned for a source other than chat/forum.
	ErrInvalidSource = errors.New("invalid submission source")
	// ErrAuthorMuted is returned when a muted author tries to submit.
	ErrAuthorMuted = errors.New("author is temporarily muted")
)

// ContentCheck is the result of the live (non-persisting) content
// check run while the user is still typing.
type ContentCheck struct {
	Flagged        bool     `json:"flagged"`
	Severity       string   `json:"severity"`
	Flags          []string `json:"flags"`
	RequiresReview bool     `json:"requires_review"`
	// AutoReject is always false: every flagged item requires a human
	// decision.
	AutoReject bool              `json:"auto_reject"`
	Helpline   map[string]string `json:"helpline,omitempty"`
}

// Service is the message/post pipeline.
type Service struct {
	Storage    storage.Storage
	Escalation *escalation.Service
	Localizer  *localization.Localizer
}

// NewService creates a new pipeline service.
func NewService(s storage.Storage, esc *escalation.Service, loc *localization.Localizer) *Service {
	return &Service{Storage: s, Escalation: esc, Localizer: loc}
}

// Submit classifies and persists a submission. If the stored severity
// is high, exactly one crisis alert is created, strictly after
// classification. Submissions are append-only.
func (s *Service) Submit(body, authorRef string, lang classifier.Lang, source string) (*models.TextSubmission, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}
	if source != models.SourceChat && source != models.SourceForum {
		return nil, ErrInvalidSource
	}
	if authorRef == "" {
		authorRef = models.AnonymousAuthor
	}
	if lang == "" {
		lang = classifier.LangEN
	}

	muted, err := s.Storage.IsAuthorMuted(authorRef)
	if err != nil {
		return nil, err
	}
	if muted {
		return nil, ErrAuthorMuted
	}

	result := classifier.Classify(body, lang)

	sub := &models.TextSubmission{
		AuthorRef:      authorRef,
		Body:           body,
		Language:       string(lang),
		Source:         source,
		Severity:       result.Severity,
		MatchedReasons: result.Reasons,
		Status:         models.SubmissionPending,
	}
	if err := s.Storage.SaveSubmission(sub); err != nil {
		return nil, err
	}

	if sub.Severity == config.EscalationSeverity {
		if _, err := s.Escalation.CreateAlert(sub); err != nil {
			// The submission itself is already stored; surface the
			// escalation failure so the caller can retry handling.
			log.Printf("ERROR: Failed to escalate submission %s: %v", sub.SubmissionID, err)
			return sub, err
		}
	}

	return sub, nil
}

// CheckContent runs the same classification as Submit without
// persisting anything. It exists so the front end can open a crisis
// dialog as the user types. AutoReject is hard-coded false: the
// pipeline never rejects content on its own.
func (s *Service) CheckContent(body string, lang classifier.Lang) ContentCheck {
	result := classifier.Classify(body, lang)

	check := ContentCheck{
		Flagged:        classifier.AtLeast(result.Severity, classifier.SeverityLow),
		Severity:       result.Severity,
		Flags:          result.Reasons,
		RequiresReview: classifier.AtLeast(result.Severity, classifier.SeverityMedium),
		AutoReject:     false,
	}

	if check.Flagged && s.Localizer != nil {
		check.Helpline = s.Localizer.Bundle(string(lang))
	}

	return check
}
