package challenge

import (
	"testing"
	"time"

	"fittracker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for engine tests.
type memStore struct {
	nextID uint
	rows   []*models.ChallengeEnrollment
}

func (m *memStore) FindByUserAndChallenge(userID uint, challengeName string) (*models.ChallengeEnrollment, error) {
	for _, r := range m.rows {
		if r.UserID == userID && r.ChallengeName == challengeName {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memStore) Create(e *models.ChallengeEnrollment) error {
	m.nextID++
	e.ID = m.nextID
	m.rows = append(m.rows, e)
	return nil
}

func (m *memStore) SetProgress(userID uint, challengeName string, progress int, status models.EnrollmentStatus) error {
	for _, r := range m.rows {
		if r.UserID == userID && r.ChallengeName == challengeName {
			r.Progress = progress
			r.Status = status
		}
	}
	return nil
}

func (m *memStore) ForceComplete(userID uint, challengeName string, endDate time.Time) error {
	for _, r := range m.rows {
		if r.UserID == userID && r.ChallengeName == challengeName {
			r.Status = models.StatusCompleted
			r.Progress = 100
			r.EndDate = endDate
		}
	}
	return nil
}

func (m *memStore) LatestForUser(userID uint) (*models.ChallengeEnrollment, error) {
	var latest *models.ChallengeEnrollment
	for _, r := range m.rows {
		if r.UserID == userID && (latest == nil || r.ID > latest.ID) {
			latest = r
		}
	}
	return latest, nil
}

func newTestEngine() (*Engine, *memStore) {
	store := &memStore{}
	e := NewEngine(store)
	e.now = func() time.Time {
		return time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)
	}
	return e, store
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		durationDays int
		reward       string
	}{
		{"7-Day Shred", 7, "Whey Protein Pack"},
		{"7 Day Abs", 7, "Whey Protein Pack"},
		{"30-Day Burn", 30, "Creatine Supplement"},
		{"30 Day Burn", 30, "Creatine Supplement"},
		{"Plank Challenge", 7, "Gym Subscription"},
		// matching is literal, lowercase names get the default plan
		{"7-day shred", 7, "Gym Subscription"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := Classify(tt.name)
			assert.Equal(t, tt.durationDays, plan.DurationDays)
			assert.Equal(t, tt.reward, plan.Reward)
		})
	}
}

func TestEnroll(t *testing.T) {
	e, store := newTestEngine()

	msg, err := e.Enroll(1, "30-Day Burn")
	require.NoError(t, err)
	assert.Equal(t, "Enrolled in 30-Day Burn successfully!", msg)

	require.Len(t, store.rows, 1)
	row := store.rows[0]
	assert.Equal(t, uint(1), row.UserID)
	assert.Equal(t, models.StatusInProgress, row.Status)
	assert.Equal(t, 0, row.Progress)
	assert.Equal(t, "Creatine Supplement", row.RewardUnlocked)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), row.StartDate)
	assert.Equal(t, time.Date(2026, time.April, 9, 0, 0, 0, 0, time.UTC), row.EndDate)
}

func TestEnrollIsIdempotent(t *testing.T) {
	e, store := newTestEngine()

	_, err := e.Enroll(1, "7-Day Shred")
	require.NoError(t, err)

	msg, err := e.Enroll(1, "7-Day Shred")
	require.NoError(t, err)
	assert.Equal(t, "You are already enrolled in this challenge.", msg)
	assert.Len(t, store.rows, 1)

	// a different user is free to enroll in the same challenge
	_, err = e.Enroll(2, "7-Day Shred")
	require.NoError(t, err)
	assert.Len(t, store.rows, 2)
}

func TestUpdateProgress(t *testing.T) {
	tests := []struct {
		raw      string
		progress int
		status   models.EnrollmentStatus
	}{
		{"42", 42, models.StatusInProgress},
		{"99", 99, models.StatusInProgress},
		{"100", 100, models.StatusCompleted},
		{"150", 100, models.StatusCompleted},
		{"-5", 0, models.StatusInProgress},
		{"not-a-number", 0, models.StatusInProgress},
		{"", 0, models.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e, store := newTestEngine()
			_, err := e.Enroll(1, "Plank Challenge")
			require.NoError(t, err)

			require.NoError(t, e.UpdateProgress(1, "Plank Challenge", tt.raw))
			assert.Equal(t, tt.progress, store.rows[0].Progress)
			assert.Equal(t, tt.status, store.rows[0].Status)
		})
	}
}

func TestUpdateProgressUnknownChallenge(t *testing.T) {
	e, store := newTestEngine()

	require.NoError(t, e.UpdateProgress(1, "Nope", "50"))
	assert.Empty(t, store.rows)
}

func TestComplete(t *testing.T) {
	e, store := newTestEngine()
	_, err := e.Enroll(1, "30 Day Burn")
	require.NoError(t, err)

	require.NoError(t, e.Complete(1, "30 Day Burn"))

	row := store.rows[0]
	assert.Equal(t, models.StatusCompleted, row.Status)
	assert.Equal(t, 100, row.Progress)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), row.EndDate)
}

func TestLatestForUser(t *testing.T) {
	e, _ := newTestEngine()

	latest, err := e.LatestForUser(1)
	require.NoError(t, err)
	assert.Nil(t, latest)

	_, err = e.Enroll(1, "7-Day Shred")
	require.NoError(t, err)
	_, err = e.Enroll(1, "30-Day Burn")
	require.NoError(t, err)

	latest, err = e.LatestForUser(1)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "30-Day Burn", latest.ChallengeName)
}
