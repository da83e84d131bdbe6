// Package escalation owns the CrisisAlert lifecycle: creation when a
// submission crosses the escalation threshold, the forward-only
// pending -> acknowledged -> resolved state machine, and the alert
// event feed.
package escalation

import (
	"errors"
	"log"
	"strings"
	"time"

	"manmitra/backend/internal/config"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/storage"
)

var (
	// ErrConflict is returned when a transition finds the alert in a
	// state it cannot advance from, including losing an acknowledge
	// race to another counselor.
	ErrConflict = errors.New("alert status has already advanced")
	// ErrEmptyNotes is returned when resolve is attempted without
	// resolution notes.
	ErrEmptyNotes = errors.New("resolution notes must not be empty")
	// ErrForbidden is returned when a counselor tries to resolve an
	// alert acknowledged by someone else.
	ErrForbidden = errors.New("alert is handled by another counselor")
	// ErrInvalidStatus is returned for an unknown status filter.
	ErrInvalidStatus = errors.New("invalid alert status filter")
)

// Service handles the business logic for crisis alerts.
type Service struct {
	Storage storage.Storage
}

// NewService creates a new escalation service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreateAlert creates a pending alert for the given submission,
// copying its severity, and publishes an alert event for downstream
// surfacing. Event delivery is best-effort: a publish failure is
// logged but never fails the alert creation.
func (s *Service) CreateAlert(sub *models.TextSubmission) (*models.CrisisAlert, error) {
	alert := &models.CrisisAlert{
		SourceSubmissionID: sub.SubmissionID,
		Severity:           sub.Severity,
		Status:             models.AlertPending,
	}
	if err := s.Storage.SaveAlert(alert); err != nil {
		return nil, err
	}

	event := models.AlertEvent{
		AlertID:      alert.AlertID,
		SubmissionID: sub.SubmissionID,
		Severity:     alert.Severity,
		CreatedAt:    alert.CreatedAt,
	}
	if err := s.Storage.PublishAlertEvent(event); err != nil {
		log.Printf("ERROR: Failed to publish alert event for %s: %v", alert.AlertID, err)
	}

	return alert, nil
}

// Acknowledge transitions a pending alert to acknowledged on behalf
// of counselorID. The first acknowledger wins; any later attempt gets
// ErrConflict.
func (s *Service) Acknowledge(alertID, counselorID string) (*models.CrisisAlert, error) {
	updated, err := s.Storage.AcknowledgeAlert(alertID, counselorID)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Distinguish a missing alert from one that already advanced.
		if _, err := s.Storage.GetAlertByID(alertID); err != nil {
			return nil, err
		}
		return nil, ErrConflict
	}
	return s.Storage.GetAlertByID(alertID)
}

// Resolve transitions an acknowledged alert to resolved. Notes are
// mandatory; a pending alert cannot skip straight to resolved; only
// the acknowledging counselor or an admin may resolve.
func (s *Service) Resolve(alertID, actorID, actorRole, notes string) (*models.CrisisAlert, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, ErrEmptyNotes
	}

	alert, err := s.Storage.GetAlertByID(alertID)
	if err != nil {
		return nil, err
	}
	if alert.Status != models.AlertAcknowledged {
		return nil, ErrConflict
	}
	if alert.HandledBy != actorID && actorRole != models.RoleAdmin {
		return nil, ErrForbidden
	}

	updated, err := s.Storage.ResolveAlert(alertID, strings.TrimSpace(notes))
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrConflict
	}
	return s.Storage.GetAlertByID(alertID)
}

// List returns alerts filtered by status, newest first. Resolved
// alerts stay queryable for audit.
func (s *Service) List(status string) ([]models.CrisisAlert, error) {
	switch status {
	case "", "all", models.AlertPending, models.AlertAcknowledged, models.AlertResolved:
	default:
		return nil, ErrInvalidStatus
	}
	return s.Storage.ListAlerts(status)
}

// RefreshPendingGauge recounts pending alerts and stores the result
// for polling clients.
func (s *Service) RefreshPendingGauge() error {
	count, err := s.Storage.CountAlertsByStatus(models.AlertPending)
	if err != nil {
		return err
	}
	return s.Storage.SetPendingAlertGauge(count)
}

// RunGaugeRefresher periodically refreshes the pending-alert gauge so
// the counselor queue can poll a cheap counter instead of the table.
func (s *Service) RunGaugeRefresher() {
	log.Println("Alert gauge refresher started.")

	ticker := time.NewTicker(config.AlertQueueRefreshInterval)
	defer ticker.Stop()

	for range ticker.C {
		if err := s.RefreshPendingGauge(); err != nil {
			log.Printf("ERROR: Failed to refresh pending alert gauge: %v", err)
		}
	}
}
