package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"gorm.io/gorm"
)

// HealthProfile is what the rule engine needs from a stored user profile.
type HealthProfile struct {
	UserID    string
	Age       int
	BMI       float64
	BloodType string // normalized, e.g. "O"
	Allergies []string
}

// ResolveHealthProfile derives age and BMI for userID at the current time.
// Returns utils.ErrNotFound when no profile row exists; the caller must
// abort suggestion generation and fall back to an empty result.
func ResolveHealthProfile(db *gorm.DB, userID string) (*HealthProfile, error) {
	return resolveHealthProfileAt(db, userID, time.Now())
}

func resolveHealthProfileAt(db *gorm.DB, userID string, now time.Time) (*HealthProfile, error) {
	var user models.User
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, utils.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: load user %s: %v", utils.ErrStore, userID, err)
	}

	return &HealthProfile{
		UserID:    user.UserID,
		Age:       utils.AgeAt(user.Birthday, now),
		BMI:       utils.CalculateBMI(user.Height, user.Weight),
		BloodType: utils.NormalizeBloodType(user.BloodType),
		Allergies: utils.SplitAllergies(user.Allergies),
	}, nil
}
