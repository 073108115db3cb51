package services

import (
	"context"
	"testing"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"

	"gorm.io/gorm"
)

func seedEaten(t *testing.T, db *gorm.DB, e models.UserEaten) {
	t.Helper()
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed user_eaten: %v", err)
	}
}

func TestReport(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	day := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	// Suggestion that proposed F001 while the user was sad.
	sug := models.FoodSuggestion{
		MoodEntryID:    1,
		UserID:         "u1",
		FoodID:         "F001",
		MoodCategoryID: models.MoodSad,
		SuggestedDate:  day,
	}
	if err := db.Create(&sug).Error; err != nil {
		t.Fatalf("seed suggestion: %v", err)
	}

	seedEaten(t, db, models.UserEaten{
		UserID: "u1", FoodID: "F001",
		EatenDateTime: day.Add(12 * time.Hour),
		FeelBetter:    models.MoodHappy,
	})
	seedEaten(t, db, models.UserEaten{
		UserID: "u1", FoodID: "F002",
		EatenDateTime: day.Add(36 * time.Hour),
		FeelBetter:    "1", // legacy numeric "better"
	})
	// Outside the window, must not appear.
	seedEaten(t, db, models.UserEaten{
		UserID: "u1", FoodID: "F003",
		EatenDateTime: day.AddDate(0, 0, 10),
		FeelBetter:    models.MoodSad,
	})
	// Different user, must not appear.
	seedEaten(t, db, models.UserEaten{
		UserID: "u2", FoodID: "F001",
		EatenDateTime: day.Add(time.Hour),
		FeelBetter:    models.MoodHappy,
	})

	svc := NewReportService(db)
	got, err := svc.Report(context.Background(), "u1", day, day.AddDate(0, 0, 3))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}

	if got.TotalMeals != 2 {
		t.Fatalf("TotalMeals = %d, want 2", got.TotalMeals)
	}
	// Newest first.
	first, second := got.TableData[0], got.TableData[1]
	if first.FoodName != "Chocolate Cake" || second.FoodName != "Grilled Salmon" {
		t.Errorf("rows = [%s, %s], want newest-first [Chocolate Cake, Grilled Salmon]",
			first.FoodName, second.FoodName)
	}
	if first.MoodAfter != "Better" {
		t.Errorf("legacy \"1\" labeled %q, want Better", first.MoodAfter)
	}
	if second.MoodAfter != "Happy" {
		t.Errorf("MD01 labeled %q, want Happy", second.MoodAfter)
	}
	// F001 was proposed by a Sad suggestion; F002 has none, so Unknown.
	if second.MoodBefore != "Sad" {
		t.Errorf("MoodBefore for salmon = %q, want Sad", second.MoodBefore)
	}
	if first.MoodBefore != "Unknown" {
		t.Errorf("MoodBefore for unsuggested cake = %q, want Unknown", first.MoodBefore)
	}

	beforeCounts := map[string]int{}
	for _, item := range got.MoodBarData {
		beforeCounts[item.Label] = item.Count
	}
	if beforeCounts["Sad"] != 1 || beforeCounts["Happy"] != 0 {
		t.Errorf("MoodBarData = %v", got.MoodBarData)
	}

	afterCounts := map[string]int{}
	for _, item := range got.MoodAfterBarData {
		afterCounts[item.Label] = item.Count
	}
	if afterCounts["Happy"] != 1 || afterCounts["Better"] != 1 {
		t.Errorf("MoodAfterBarData = %v", got.MoodAfterBarData)
	}
}

func TestReportEmptyWindow(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)

	svc := NewReportService(db)
	got, err := svc.Report(context.Background(), "u1",
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got.TotalMeals != 0 || len(got.TableData) != 0 {
		t.Fatalf("empty window produced %d meals", got.TotalMeals)
	}
	// Histograms keep their full label set at zero.
	if len(got.MoodBarData) != 4 || len(got.MoodAfterBarData) != 7 {
		t.Errorf("histogram sizes = %d/%d, want 4/7",
			len(got.MoodBarData), len(got.MoodAfterBarData))
	}
}

func TestLabelFeelBetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1", "Better"},
		{"0", "Same"},
		{"-1", "Worse"},
		{models.MoodAngry, "Angry"},
		{"Same", "Same"},
		{"??", "Unknown"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := labelFeelBetter(tt.in); got != tt.want {
			t.Errorf("labelFeelBetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
