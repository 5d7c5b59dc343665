// Package challenge implements enrollment and progress tracking for timed
// fitness challenges.
package challenge

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fittracker/internal/models"
)

// Store is the persistence boundary for enrollments. Lookups return
// (nil, nil) when no matching row exists.
type Store interface {
	FindByUserAndChallenge(userID uint, challengeName string) (*models.ChallengeEnrollment, error)
	Create(e *models.ChallengeEnrollment) error
	SetProgress(userID uint, challengeName string, progress int, status models.EnrollmentStatus) error
	ForceComplete(userID uint, challengeName string, endDate time.Time) error
	LatestForUser(userID uint) (*models.ChallengeEnrollment, error)
}

// Plan is the duration and reward assigned to a challenge at enrollment.
type Plan struct {
	DurationDays int
	Reward       string
}

type Engine struct {
	store Store
	now   func() time.Time
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store, now: time.Now}
}

// Classify picks duration and reward from the challenge name. Matching is
// on the literal substrings the enrollment form produces; anything
// unrecognized gets the 7-day default plan.
func Classify(challengeName string) Plan {
	switch {
	case contains(challengeName, "7-Day", "7 Day"):
		return Plan{DurationDays: 7, Reward: "Whey Protein Pack"}
	case contains(challengeName, "30-Day", "30 Day"):
		return Plan{DurationDays: 30, Reward: "Creatine Supplement"}
	default:
		return Plan{DurationDays: 7, Reward: "Gym Subscription"}
	}
}

func contains(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Enroll creates an enrollment for (userID, challengeName) and returns the
// user-facing message. Enrolling twice in the same challenge is a no-op.
func (e *Engine) Enroll(userID uint, challengeName string) (string, error) {
	existing, err := e.store.FindByUserAndChallenge(userID, challengeName)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "You are already enrolled in this challenge.", nil
	}

	plan := Classify(challengeName)
	start := e.today()
	enrollment := &models.ChallengeEnrollment{
		UserID:         userID,
		ChallengeName:  challengeName,
		Status:         models.StatusInProgress,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, plan.DurationDays),
		Progress:       0,
		RewardUnlocked: plan.Reward,
	}
	if err := e.store.Create(enrollment); err != nil {
		return "", err
	}
	return fmt.Sprintf("Enrolled in %s successfully!", challengeName), nil
}

// UpdateProgress parses raw progress from form input and stores the clamped
// value. Unparseable input counts as 0. Updating a challenge the user is
// not enrolled in does nothing.
func (e *Engine) UpdateProgress(userID uint, challengeName, raw string) error {
	progress, err := strconv.Atoi(raw)
	if err != nil {
		progress = 0
	}
	progress = clamp(progress)

	status := models.StatusInProgress
	if progress >= 100 {
		status = models.StatusCompleted
	}
	return e.store.SetProgress(userID, challengeName, progress, status)
}

// Complete marks the enrollment finished: progress 100, end date today.
func (e *Engine) Complete(userID uint, challengeName string) error {
	return e.store.ForceComplete(userID, challengeName, e.today())
}

// LatestForUser returns the user's most recent enrollment, or nil.
func (e *Engine) LatestForUser(userID uint) (*models.ChallengeEnrollment, error) {
	return e.store.LatestForUser(userID)
}

func (e *Engine) today() time.Time {
	y, m, d := e.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func clamp(progress int) int {
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
