package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB opens a fresh in-memory database per test. The shared-cache
// DSN with a unique name keeps gorm's connection pool on one database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Ingredient{},
		&models.FoodIngredient{},
		&models.Allergen{},
		&models.MoodEntry{},
		&models.FoodSuggestion{},
		&models.Notification{},
		&models.UserEaten{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// seedCatalog installs a small fixed catalog:
//
//	F001 Grilled Salmon  moods MD01,MD04  BMI N/A  ages 13-60  [Salmon]
//	F002 Chocolate Cake  moods MD02       BMI <25  ages 13-18  [Flour, Milk]
//	F003 Peanut Stew     moods MD01,MD02  BMI N/A  ages 18-60  [Peanut, Milk]
//	F004 Fruit Salad     moods MD01       BMI N/A  unparseable [Apple]
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	foods := []models.FoodItem{
		{FoodID: "F001", FoodName: "Grilled Salmon", ImageURL: "/photo/f001.png", MoodCategoryID: "MD01, MD04", BMI: models.BMIBracketAny, AgeRange: "13-60"},
		{FoodID: "F002", FoodName: "Chocolate Cake", ImageURL: "/photo/f002.png", MoodCategoryID: "MD02", BMI: models.BMIBracketUnder25, AgeRange: "13-18"},
		{FoodID: "F003", FoodName: "Peanut Stew", ImageURL: "/photo/f003.png", MoodCategoryID: "MD01, MD02", BMI: models.BMIBracketAny, AgeRange: "18–60"},
		{FoodID: "F004", FoodName: "Fruit Salad", ImageURL: "/photo/f004.png", MoodCategoryID: "MD01", BMI: models.BMIBracketAny, AgeRange: "all ages"},
	}
	ingredients := []models.Ingredient{
		{IngredientID: "I001", IngredientName: "Salmon", Allergy: "20", BloodType: "O, A"},
		{IngredientID: "I002", IngredientName: "Flour", Allergy: "", BloodType: "B, AB"},
		{IngredientID: "I003", IngredientName: "Peanut", Allergy: "10", BloodType: "O"},
		{IngredientID: "I004", IngredientName: "Milk", Allergy: "100", BloodType: "A, B, AB, O"},
		{IngredientID: "I005", IngredientName: "Apple", Allergy: "", BloodType: "O, A, B, AB"},
	}
	links := []models.FoodIngredient{
		{FoodID: "F001", IngredientID: "I001"},
		{FoodID: "F002", IngredientID: "I002"},
		{FoodID: "F002", IngredientID: "I004"},
		{FoodID: "F003", IngredientID: "I003"},
		{FoodID: "F003", IngredientID: "I004"},
		{FoodID: "F004", IngredientID: "I005"},
	}
	allergens := []models.Allergen{
		{ALID: "10", ALTitle: "Peanut"},
		{ALID: "20", ALTitle: "Fish"},
		{ALID: "100", ALTitle: "Milk"},
	}
	for _, f := range foods {
		if err := db.Create(&f).Error; err != nil {
			t.Fatalf("seed food %s: %v", f.FoodID, err)
		}
	}
	for _, ing := range ingredients {
		if err := db.Create(&ing).Error; err != nil {
			t.Fatalf("seed ingredient %s: %v", ing.IngredientID, err)
		}
	}
	for _, l := range links {
		if err := db.Create(&l).Error; err != nil {
			t.Fatalf("seed link %s/%s: %v", l.FoodID, l.IngredientID, err)
		}
	}
	for _, al := range allergens {
		if err := db.Create(&al).Error; err != nil {
			t.Fatalf("seed allergen %s: %v", al.ALID, err)
		}
	}
}

func seedUser(t *testing.T, db *gorm.DB, u models.User) {
	t.Helper()
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = time.Now()
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user %s: %v", u.UserID, err)
	}
}

// fakeSender records deliveries and can be told to fail.
type fakeSender struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeSender) SendReminder(to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func (f *fakeSender) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}
