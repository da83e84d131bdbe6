package moderation_test

import (
	"time"

	"manmitra/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a hand-written testify mock over storage.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) SaveUser(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockStorage) GetUserByID(userID string) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SaveUserIfNotExists(userID, role string) (*models.User, error) {
	args := m.Called(userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockStorage) SaveSubmission(sub *models.TextSubmission) error {
	args := m.Called(sub)
	return args.Error(0)
}

func (m *MockStorage) GetSubmissionByID(id string) (*models.TextSubmission, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TextSubmission), args.Error(1)
}

func (m *MockStorage) UpdateSubmissionStatus(id, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockStorage) ListSubmissionsBySource(source string) ([]models.TextSubmission, error) {
	args := m.Called(source)
	return args.Get(0).([]models.TextSubmission), args.Error(1)
}

func (m *MockStorage) ListSubmissionsByStatus(source, status string) ([]models.TextSubmission, error) {
	args := m.Called(source, status)
	return args.Get(0).([]models.TextSubmission), args.Error(1)
}

func (m *MockStorage) ListFlaggedSubmissions(source string) ([]models.TextSubmission, error) {
	args := m.Called(source)
	return args.Get(0).([]models.TextSubmission), args.Error(1)
}

func (m *MockStorage) SaveAlert(alert *models.CrisisAlert) error {
	args := m.Called(alert)
	return args.Error(0)
}

func (m *MockStorage) GetAlertByID(alertID string) (*models.CrisisAlert, error) {
	args := m.Called(alertID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CrisisAlert), args.Error(1)
}

func (m *MockStorage) ListAlerts(status string) ([]models.CrisisAlert, error) {
	args := m.Called(status)
	return args.Get(0).([]models.CrisisAlert), args.Error(1)
}

func (m *MockStorage) AcknowledgeAlert(alertID, counselorID string) (bool, error) {
	args := m.Called(alertID, counselorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) ResolveAlert(alertID, notes string) (bool, error) {
	args := m.Called(alertID, notes)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) CountAlertsByStatus(status string) (int64, error) {
	args := m.Called(status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) SaveDecision(decision *models.ModerationDecision) error {
	args := m.Called(decision)
	return args.Error(0)
}

func (m *MockStorage) GetDecisionsForPost(postID string) ([]models.ModerationDecision, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.ModerationDecision), args.Error(1)
}

func (m *MockStorage) MuteAuthor(authorRef string, duration time.Duration) error {
	args := m.Called(authorRef, duration)
	return args.Error(0)
}

func (m *MockStorage) UnmuteAuthor(authorRef string) error {
	args := m.Called(authorRef)
	return args.Error(0)
}

func (m *MockStorage) IsAuthorMuted(authorRef string) (bool, error) {
	args := m.Called(authorRef)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) PublishAlertEvent(event models.AlertEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockStorage) SetPendingAlertGauge(count int64) error {
	args := m.Called(count)
	return args.Error(0)
}

func (m *MockStorage) GetPendingAlertGauge() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
