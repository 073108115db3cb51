package models

// Static reference data for the suggestion engine. Rows are seeded out of
// band; nothing in this service creates or deletes them.

const (
	// BMIBracketUnder25 tags foods reserved for users below the BMI 25 cutoff.
	BMIBracketUnder25 = "<25"
	// BMIBracketAny means the food carries no BMI constraint.
	BMIBracketAny = "N/A"
)

type FoodItem struct {
	FoodID         string `gorm:"primaryKey;size:16"`
	FoodName       string `gorm:"not null"`
	ImageURL       string
	MoodCategoryID string // multi-value token field, e.g. "MD01, MD03"
	BMI            string `gorm:"size:8"`  // "<25" or "N/A"
	AgeRange       string `gorm:"size:16"` // "min-max", en dash tolerated
}

type Ingredient struct {
	IngredientID   string `gorm:"primaryKey;size:16"`
	IngredientName string `gorm:"not null"`
	Allergy        string // token field of allergen IDs
	BloodType      string // token field of normalized codes, e.g. "A, O, AB"
}

// FoodIngredient is the many-to-many link between foods and ingredients.
type FoodIngredient struct {
	FoodID       string `gorm:"primaryKey;size:16"`
	IngredientID string `gorm:"primaryKey;size:16"`
}

// Allergen maps a user's free-text allergy name to a stable identifier.
type Allergen struct {
	ALID    string `gorm:"primaryKey;size:16"`
	ALTitle string `gorm:"not null"` // matched case-insensitively
}
