package models

import (
	"time"

	"gorm.io/gorm"
)

type EnrollmentStatus string

const (
	StatusInProgress EnrollmentStatus = "in_progress"
	StatusCompleted  EnrollmentStatus = "completed"
)

// ChallengeEnrollment tracks one user's participation in a named challenge.
// A user can hold at most one enrollment per challenge name.
type ChallengeEnrollment struct {
	gorm.Model
	UserID        uint   `gorm:"uniqueIndex:idx_user_challenge;not null"`
	ChallengeName string `gorm:"uniqueIndex:idx_user_challenge;size:100;not null"`

	Status         EnrollmentStatus `gorm:"type:varchar(20);not null"`
	StartDate      time.Time        `gorm:"type:date"`
	EndDate        time.Time        `gorm:"type:date"`
	Progress       int              `gorm:"not null;default:0"`
	RewardUnlocked string           `gorm:"size:100"`
}
