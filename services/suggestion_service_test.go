package services

import (
	"testing"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"

	"gorm.io/gorm"
)

// identityShuffle keeps the sorted base order, making the draw deterministic.
func identityShuffle(n int, swap func(i, j int)) {}

func newTestSuggestionService() *SuggestionService {
	return &SuggestionService{shuffle: identityShuffle}
}

func seedMoodEntry(t *testing.T, db *gorm.DB, userID, moodCode string) uint {
	t.Helper()
	entry := models.MoodEntry{
		UserID:         userID,
		MoodCategoryID: moodCode,
		MoodIntensity:  5,
		DateTime:       time.Now(),
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("seed mood entry: %v", err)
	}
	return entry.MoodEntryID
}

func TestGenerateCapsAtThree(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	// Pad the catalog so more than three foods qualify for MD01/O-type.
	extra := []models.FoodItem{
		{FoodID: "F005", FoodName: "Rice Bowl", MoodCategoryID: "MD01", BMI: models.BMIBracketAny, AgeRange: "13-60"},
		{FoodID: "F006", FoodName: "Miso Soup", MoodCategoryID: "MD01", BMI: models.BMIBracketAny, AgeRange: "13-60"},
	}
	for _, f := range extra {
		if err := db.Create(&f).Error; err != nil {
			t.Fatalf("seed extra food: %v", err)
		}
	}
	for _, l := range []models.FoodIngredient{
		{FoodID: "F005", IngredientID: "I005"},
		{FoodID: "F006", IngredientID: "I005"},
	} {
		if err := db.Create(&l).Error; err != nil {
			t.Fatalf("seed extra link: %v", err)
		}
	}
	seedUser(t, db, models.User{
		UserID:    "u1",
		Birthday:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		BloodType: "O+",
		Weight:    60,
		Height:    170,
	})
	entryID := seedMoodEntry(t, db, "u1", "MD01")

	picked := newTestSuggestionService().GenerateForMoodEntry(db, entryID, "u1", "MD01")
	if len(picked) != 3 {
		t.Fatalf("picked %d foods %v, want 3", len(picked), picked)
	}
	// Identity shuffle preserves the numeric-suffix sort, so the first
	// three catalog IDs win.
	want := []string{"F001", "F003", "F004"}
	for i := range want {
		if picked[i] != want[i] {
			t.Fatalf("picked = %v, want %v", picked, want)
		}
	}

	var rows []models.FoodSuggestion
	if err := db.Where("mood_entry_id = ?", entryID).Find(&rows).Error; err != nil {
		t.Fatalf("load suggestions: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("persisted %d suggestion rows, want 3", len(rows))
	}
	for _, row := range rows {
		if row.EatenFlag != nil {
			t.Errorf("fresh suggestion %s has EatenFlag %q, want NULL", row.FoodID, *row.EatenFlag)
		}
		if row.MoodCategoryID != "MD01" {
			t.Errorf("suggestion %s has mood %q, want MD01", row.FoodID, row.MoodCategoryID)
		}
	}
}

func TestGenerateEmptyWhenNothingAllowed(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	seedUser(t, db, models.User{
		UserID:    "u1",
		Birthday:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		BloodType: "O",
		Weight:    60,
		Height:    170,
	})
	entryID := seedMoodEntry(t, db, "u1", "MD03")

	// No catalog food carries MD03.
	picked := newTestSuggestionService().GenerateForMoodEntry(db, entryID, "u1", "MD03")
	if len(picked) != 0 {
		t.Fatalf("picked %v, want empty", picked)
	}
	var count int64
	if err := db.Model(&models.FoodSuggestion{}).Count(&count).Error; err != nil {
		t.Fatalf("count suggestions: %v", err)
	}
	if count != 0 {
		t.Fatalf("persisted %d rows, want 0", count)
	}
}

func TestGenerateMissingProfileDegrades(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	entryID := seedMoodEntry(t, db, "ghost", "MD01")

	picked := newTestSuggestionService().GenerateForMoodEntry(db, entryID, "ghost", "MD01")
	if len(picked) != 0 {
		t.Fatalf("picked %v for unknown user, want empty", picked)
	}

	// The mood entry itself must survive the rolled-back generation.
	var entry models.MoodEntry
	if err := db.First(&entry, entryID).Error; err != nil {
		t.Fatalf("mood entry gone after failed generation: %v", err)
	}
	var count int64
	if err := db.Model(&models.FoodSuggestion{}).Count(&count).Error; err != nil {
		t.Fatalf("count suggestions: %v", err)
	}
	if count != 0 {
		t.Fatalf("persisted %d suggestion rows, want 0", count)
	}
}

// A repeated call for the same entry inserts a second batch. That matches
// the production call pattern (one call per entry) and pins the behavior.
func TestGenerateIsNotIdempotent(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	seedUser(t, db, models.User{
		UserID:    "u1",
		Birthday:  time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		BloodType: "O",
		Weight:    60,
		Height:    170,
	})
	entryID := seedMoodEntry(t, db, "u1", "MD01")

	svc := newTestSuggestionService()
	first := svc.GenerateForMoodEntry(db, entryID, "u1", "MD01")
	second := svc.GenerateForMoodEntry(db, entryID, "u1", "MD01")

	var count int64
	if err := db.Model(&models.FoodSuggestion{}).
		Where("mood_entry_id = ?", entryID).Count(&count).Error; err != nil {
		t.Fatalf("count suggestions: %v", err)
	}
	if want := int64(len(first) + len(second)); count != want {
		t.Fatalf("persisted %d rows after two calls, want %d", count, want)
	}
}
