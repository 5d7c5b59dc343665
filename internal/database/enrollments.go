package database

import (
	"errors"
	"time"

	"fittracker/internal/models"

	"gorm.io/gorm"
)

// EnrollmentStore is the gorm-backed challenge.Store.
type EnrollmentStore struct {
	db *gorm.DB
}

func NewEnrollmentStore(db *gorm.DB) *EnrollmentStore {
	return &EnrollmentStore{db: db}
}

func (s *EnrollmentStore) FindByUserAndChallenge(userID uint, challengeName string) (*models.ChallengeEnrollment, error) {
	var e models.ChallengeEnrollment
	err := s.db.
		Where("user_id = ? AND challenge_name = ?", userID, challengeName).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EnrollmentStore) Create(e *models.ChallengeEnrollment) error {
	return s.db.Create(e).Error
}

func (s *EnrollmentStore) SetProgress(userID uint, challengeName string, progress int, status models.EnrollmentStatus) error {
	// matching zero rows is fine, the caller treats it as a no-op
	return s.db.Model(&models.ChallengeEnrollment{}).
		Where("user_id = ? AND challenge_name = ?", userID, challengeName).
		Updates(map[string]interface{}{
			"progress": progress,
			"status":   status,
		}).Error
}

func (s *EnrollmentStore) ForceComplete(userID uint, challengeName string, endDate time.Time) error {
	return s.db.Model(&models.ChallengeEnrollment{}).
		Where("user_id = ? AND challenge_name = ?", userID, challengeName).
		Updates(map[string]interface{}{
			"status":   models.StatusCompleted,
			"progress": 100,
			"end_date": endDate,
		}).Error
}

func (s *EnrollmentStore) LatestForUser(userID uint) (*models.ChallengeEnrollment, error) {
	var e models.ChallengeEnrollment
	err := s.db.
		Where("user_id = ?", userID).
		Order("id desc").
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}
