package services

import (
	"math/rand"
	"sort"
	"time"

	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxSuggestions = 3

// SuggestionService picks up to 3 allowed foods for a freshly inserted mood
// entry and persists the decision. NOT idempotent: a second call for the
// same entry inserts a second batch. The one caller (SaveMood) invokes it
// exactly once per entry, on the same transaction as the entry insert.
type SuggestionService struct {
	// shuffle is rand.Shuffle in production; tests inject a fixed order.
	shuffle func(n int, swap func(i, j int))
}

func NewSuggestionService() *SuggestionService {
	return &SuggestionService{shuffle: rand.Shuffle}
}

// GenerateForMoodEntry returns the selected FoodIDs. Every failure path
// (missing profile, rule error, insert error) rolls back only the
// suggestion inserts and degrades to an empty list; the mood entry itself
// is never touched.
func (s *SuggestionService) GenerateForMoodEntry(db *gorm.DB, moodEntryID uint, userID, moodCode string) []string {
	picked, err := s.generate(db, moodEntryID, userID, moodCode)
	if err != nil {
		logger.Error("food suggestion generation failed",
			zap.Uint("mood_entry_id", moodEntryID),
			zap.String("user_id", userID),
			zap.Error(err))
		return []string{}
	}
	logger.Info("food suggestions inserted",
		zap.Uint("mood_entry_id", moodEntryID),
		zap.Strings("food_ids", picked))
	return picked
}

func (s *SuggestionService) generate(db *gorm.DB, moodEntryID uint, userID, moodCode string) ([]string, error) {
	picked := []string{}

	// Nested transaction: on the SaveMood tx this is a savepoint, so a
	// failure here cannot take the mood entry down with it.
	err := db.Transaction(func(tx *gorm.DB) error {
		profile, err := ResolveHealthProfile(tx, userID)
		if err != nil {
			return err
		}

		allowed, err := NewEligibilityService(tx).AllowedFoods(profile, moodCode)
		if err != nil {
			return err
		}

		// Deterministic base order so the draw is reproducible per seed.
		sort.Slice(allowed, func(i, j int) bool {
			return utils.NumericIDSuffix(allowed[i]) < utils.NumericIDSuffix(allowed[j])
		})
		s.shuffle(len(allowed), func(i, j int) {
			allowed[i], allowed[j] = allowed[j], allowed[i]
		})
		if len(allowed) > maxSuggestions {
			allowed = allowed[:maxSuggestions]
		}

		now := time.Now()
		for _, foodID := range allowed {
			row := models.FoodSuggestion{
				MoodEntryID:    moodEntryID,
				UserID:         userID,
				FoodID:         foodID,
				MoodCategoryID: moodCode,
				SuggestedDate:  now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		picked = allowed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return picked, nil
}
