package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strconv"
	"time"

	"manmitra/backend/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	SaveUser(user *models.User) error
	GetUserByID(userID string) (*models.User, error)
	SaveUserIfNotExists(userID, role string) (*models.User, error)

	SaveSubmission(sub *models.TextSubmission) error
	GetSubmissionByID(id string) (*models.TextSubmission, error)
	UpdateSubmissionStatus(id, status string) error
	ListSubmissionsBySource(source string) ([]models.TextSubmission, error)
	ListSubmissionsByStatus(source, status string) ([]models.TextSubmission, error)
	ListFlaggedSubmissions(source string) ([]models.TextSubmission, error)

	SaveAlert(alert *models.CrisisAlert) error
	GetAlertByID(alertID string) (*models.CrisisAlert, error)
	ListAlerts(status string) ([]models.CrisisAlert, error)
	AcknowledgeAlert(alertID, counselorID string) (bool, error)
	ResolveAlert(alertID, notes string) (bool, error)
	CountAlertsByStatus(status string) (int64, error)

	SaveDecision(decision *models.ModerationDecision) error
	GetDecisionsForPost(postID string) ([]models.ModerationDecision, error)

	MuteAuthor(authorRef string, duration time.Duration) error
	UnmuteAuthor(authorRef string) error
	IsAuthorMuted(authorRef string) (bool, error)

	PublishAlertEvent(event models.AlertEvent) error

	SetPendingAlertGauge(count int64) error
	GetPendingAlertGauge() (int64, error)
}

type Service struct {
	DB    *gorm.DB
	Redis *redis.Client
	Ctx   context.Context
}

// NewStorageService Constructor
func NewStorageService(db *gorm.DB, rdb *redis.Client) *Service {
	return &Service{
		DB:    db,
		Redis: rdb,
		Ctx:   context.Background(),
	}
}

// SaveUser persists a user record.
func (s *Service) SaveUser(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *Service) GetUserByID(userID string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("id = ?", userID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SaveUserIfNotExists creates a user on first contact, keeping the
// existing record (and role) if one is already present.
func (s *Service) SaveUserIfNotExists(userID, role string) (*models.User, error) {
	user := models.User{ID: userID}
	defaults := models.User{ID: userID, Role: role}

	result := s.DB.Where("id = ?", userID).FirstOrCreate(&user, defaults)
	if result.Error != nil {
		log.Printf("ERROR: Failed to save user %s on first contact: %v", userID, result.Error)
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("INFO: New %s user %s saved to database.", role, userID)
	}
	return &user, nil
}

// SaveSubmission appends a submission. Submissions are never updated
// in place except for their displayed moderation status.
func (s *Service) SaveSubmission(sub *models.TextSubmission) error {
	if sub.Status == "" {
		sub.Status = models.SubmissionPending
	}
	if err := s.DB.Create(sub).Error; err != nil {
		log.Printf("ERROR: Failed to save submission from %s: %v", sub.AuthorRef, err)
		return err
	}
	return nil
}

func (s *Service) GetSubmissionByID(id string) (*models.TextSubmission, error) {
	var sub models.TextSubmission
	err := s.DB.Where("submission_id = ?", id).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateSubmissionStatus changes only the displayed status; the
// classification fields stay untouched.
func (s *Service) UpdateSubmissionStatus(id, status string) error {
	return s.DB.Model(&models.TextSubmission{}).
		Where("submission_id = ?", id).
		Update("status", status).Error
}

func (s *Service) ListSubmissionsBySource(source string) ([]models.TextSubmission, error) {
	var subs []models.TextSubmission
	if err := s.DB.Where("source = ?", source).
		Order("created_at desc").Find(&subs).Error; err != nil {
		log.Printf("ERROR: Failed to list %s submissions: %v", source, err)
		return nil, err
	}
	return subs, nil
}

func (s *Service) ListSubmissionsByStatus(source, status string) ([]models.TextSubmission, error) {
	var subs []models.TextSubmission
	if err := s.DB.Where("source = ? AND status = ?", source, status).
		Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// ListFlaggedSubmissions returns submissions with severity at least
// medium or with any matched reasons.
func (s *Service) ListFlaggedSubmissions(source string) ([]models.TextSubmission, error) {
	var subs []models.TextSubmission
	if err := s.DB.Where("source = ?", source).
		Where("(severity IN ? OR COALESCE(array_length(matched_reasons, 1), 0) > 0)",
			[]string{"medium", "high"}).
		Order("created_at desc").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *Service) SaveAlert(alert *models.CrisisAlert) error {
	if alert.Status == "" {
		alert.Status = models.AlertPending
	}
	if err := s.DB.Create(alert).Error; err != nil {
		log.Printf("ERROR: Failed to save alert for submission %s: %v", alert.SourceSubmissionID, err)
		return err
	}
	return nil
}

func (s *Service) GetAlertByID(alertID string) (*models.CrisisAlert, error) {
	var alert models.CrisisAlert
	err := s.DB.Where("alert_id = ?", alertID).First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &alert, nil
}

func (s *Service) ListAlerts(status string) ([]models.CrisisAlert, error) {
	var alerts []models.CrisisAlert
	q := s.DB.Order("created_at desc")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&alerts).Error; err != nil {
		log.Printf("ERROR: Failed to list alerts (status=%s): %v", status, err)
		return nil, err
	}
	return alerts, nil
}

// AcknowledgeAlert performs the pending -> acknowledged transition as
// a conditional update keyed on the current status. It reports whether
// the row was actually transitioned; false means the alert was missing
// or had already advanced (the caller decides which).
func (s *Service) AcknowledgeAlert(alertID, counselorID string) (bool, error) {
	result := s.DB.Model(&models.CrisisAlert{}).
		Where("alert_id = ? AND status = ?", alertID, models.AlertPending).
		Updates(map[string]interface{}{
			"status":     models.AlertAcknowledged,
			"handled_by": counselorID,
			"handled_at": gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ResolveAlert performs the acknowledged -> resolved transition with
// the same check-and-set discipline as AcknowledgeAlert.
func (s *Service) ResolveAlert(alertID, notes string) (bool, error) {
	result := s.DB.Model(&models.CrisisAlert{}).
		Where("alert_id = ? AND status = ?", alertID, models.AlertAcknowledged).
		Updates(map[string]interface{}{
			"status":           models.AlertResolved,
			"resolution_notes": notes,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *Service) CountAlertsByStatus(status string) (int64, error) {
	var count int64
	err := s.DB.Model(&models.CrisisAlert{}).
		Where("status = ?", status).Count(&count).Error
	return count, err
}

func (s *Service) SaveDecision(decision *models.ModerationDecision) error {
	if err := s.DB.Create(decision).Error; err != nil {
		log.Printf("ERROR: Failed to save decision for post %s: %v", decision.PostID, err)
		return err
	}
	return nil
}

// GetDecisionsForPost returns the full decision history, newest last.
func (s *Service) GetDecisionsForPost(postID string) ([]models.ModerationDecision, error) {
	var decisions []models.ModerationDecision
	if err := s.DB.Where("post_id = ?", postID).
		Order("created_at asc").Find(&decisions).Error; err != nil {
		return nil, err
	}
	return decisions, nil
}

// MuteAuthor sets a mute key in Redis with a TTL. Muted authors cannot
// submit until the key expires or is removed.
func (s *Service) MuteAuthor(authorRef string, duration time.Duration) error {
	key := "mute:" + authorRef
	return s.Redis.Set(s.Ctx, key, "rejected", duration).Err()
}

func (s *Service) UnmuteAuthor(authorRef string) error {
	return s.Redis.Del(s.Ctx, "mute:"+authorRef).Err()
}

// IsAuthorMuted checks the mute status in Redis.
func (s *Service) IsAuthorMuted(authorRef string) (bool, error) {
	key := "mute:" + authorRef
	status, err := s.Redis.Get(s.Ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status != "", nil
}

// PublishAlertEvent publishes an alert event on the feed channel via
// Redis Pub/Sub.
func (s *Service) PublishAlertEvent(event models.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.Redis.Publish(s.Ctx, alertFeedChannel, string(payload)).Err()
}

// SubscribeAlertEvents subscribes to the alert feed channel.
func (s *Service) SubscribeAlertEvents() *redis.PubSub {
	return s.Redis.Subscribe(s.Ctx, alertFeedChannel)
}

const (
	alertFeedChannel = "alerts:feed"
	pendingGaugeKey  = "alerts:pending_count"
)

// SetPendingAlertGauge stores the latest pending-alert count for
// polling clients.
func (s *Service) SetPendingAlertGauge(count int64) error {
	return s.Redis.Set(s.Ctx, pendingGaugeKey, count, 0).Err()
}

func (s *Service) GetPendingAlertGauge() (int64, error) {
	val, err := s.Redis.Get(s.Ctx, pendingGaugeKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}
