package pipeline_test

import (
	"testing"

	"manmitra/backend/internal/classifier"
	"manmitra/backend/internal/escalation"
	"manmitra/backend/internal/localization"
	"manmitra/backend/internal/models"
	"manmitra/backend/internal/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newService(storageMock *MockStorage) *pipeline.Service {
	return pipeline.NewService(storageMock, escalation.NewService(storageMock), nil)
}

// TestSubmit_HighSeverityCreatesExactlyOneAlert verifies the chain:
// classify -> persist -> escalate, with a single alert per submission.
func TestSubmit_HighSeverityCreatesExactlyOneAlert(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	storageMock.On("IsAuthorMuted", "student-1").Return(false, nil)
	storageMock.On("SaveSubmission", mock.AnythingOfType("*models.TextSubmission")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.TextSubmission).SubmissionID = "sub-1"
		}).Return(nil)
	storageMock.On("SaveAlert", mock.AnythingOfType("*models.CrisisAlert")).Return(nil)
	storageMock.On("PublishAlertEvent", mock.Anything).Return(nil)

	// Act
	sub, err := svc.Submit("I want to kill myself", "student-1", classifier.LangEN, models.SourceChat)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, classifier.SeverityHigh, sub.Severity)
	assert.Contains(t, sub.MatchedReasons, classifier.ReasonHigh)
	storageMock.AssertNumberOfCalls(t, "SaveSubmission", 1)
	storageMock.AssertNumberOfCalls(t, "SaveAlert", 1)
}

// TestSubmit_LowSeverityNoAlert verifies submissions below the
// escalation threshold never create alerts.
func TestSubmit_LowSeverityNoAlert(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	storageMock.On("IsAuthorMuted", "student-1").Return(false, nil)
	storageMock.On("SaveSubmission", mock.Anything).Return(nil)

	// Act
	sub, err := svc.Submit("This exam is so annoying", "student-1", classifier.LangEN, models.SourceForum)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, classifier.SeverityLow, sub.Severity)
	storageMock.AssertNotCalled(t, "SaveAlert", mock.Anything)
}

// TestSubmit_EmptyBodyRejected verifies blank submissions never reach
// storage.
func TestSubmit_EmptyBodyRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	_, err := svc.Submit("   ", "student-1", classifier.LangEN, models.SourceChat)

	assert.ErrorIs(t, err, pipeline.ErrEmptyBody)
	storageMock.AssertNotCalled(t, "SaveSubmission", mock.Anything)
}

// TestSubmit_InvalidSourceRejected verifies sources outside chat and
// forum are a validation error.
func TestSubmit_InvalidSourceRejected(t *testing.T) {
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	_, err := svc.Submit("hello", "student-1", classifier.LangEN, "email")

	assert.ErrorIs(t, err, pipeline.ErrInvalidSource)
}

// TestSubmit_MutedAuthorRejected verifies a rejected-and-muted author
// cannot submit until the mute expires.
func TestSubmit_MutedAuthorRejected(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := newService(storageMock)
	storageMock.On("IsAuthorMuted", "student-1").Return(true, nil)

	// Act
	_, err := svc.Submit("hello there", "student-1", classifier.LangEN, models.SourceForum)

	// Assert
	assert.ErrorIs(t, err, pipeline.ErrAuthorMuted)
	storageMock.AssertNotCalled(t, "SaveSubmission", mock.Anything)
}

// TestSubmit_AnonymousSentinel verifies an empty author reference is
// stored as the anonymous sentinel.
func TestSubmit_AnonymousSentinel(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	storageMock.On("IsAuthorMuted", models.AnonymousAuthor).Return(false, nil)
	storageMock.On("SaveSubmission", mock.Anything).Return(nil)

	// Act
	sub, err := svc.Submit("just feeling stressed today", "", classifier.LangEN, models.SourceChat)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.AnonymousAuthor, sub.AuthorRef)
}

// TestCheckContent_NeverPersists verifies the live check touches no
// storage and never auto-rejects, even for high-severity text.
func TestCheckContent_NeverPersists(t *testing.T) {
	// Arrange
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	// Act
	check := svc.CheckContent("I want to kill myself", classifier.LangEN)

	// Assert
	assert.True(t, check.Flagged)
	assert.Equal(t, classifier.SeverityHigh, check.Severity)
	assert.True(t, check.RequiresReview)
	assert.False(t, check.AutoReject, "the pipeline must never auto-reject")
	assert.NotEmpty(t, check.Flags)
	storageMock.AssertNotCalled(t, "SaveSubmission", mock.Anything)
	storageMock.AssertNotCalled(t, "SaveAlert", mock.Anything)
}

// TestCheckContent_CleanText verifies clean text is unflagged with no
// review requirement.
func TestCheckContent_CleanText(t *testing.T) {
	storageMock := new(MockStorage)
	svc := newService(storageMock)

	check := svc.CheckContent("see you at the library", classifier.LangEN)

	assert.False(t, check.Flagged)
	assert.Equal(t, classifier.SeverityNone, check.Severity)
	assert.False(t, check.RequiresReview)
	assert.Empty(t, check.Flags)
}

// TestCheckContent_IncludesHelpline verifies flagged checks carry the
// localized helpline resources when a localizer is configured.
func TestCheckContent_IncludesHelpline(t *testing.T) {
	// Arrange
	localizer, err := localization.NewLocalizer("../localization/locales")
	assert.NoError(t, err)

	storageMock := new(MockStorage)
	svc := pipeline.NewService(storageMock, escalation.NewService(storageMock), localizer)

	// Act
	check := svc.CheckContent("main bahut pareshan hoon", classifier.LangHI)

	// Assert
	assert.True(t, check.Flagged)
	assert.Equal(t, "14416", check.Helpline["helpline_number"])
	assert.NotEmpty(t, check.Helpline["crisis_message"])
}
