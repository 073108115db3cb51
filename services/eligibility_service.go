package services

import (
	"fmt"
	"strings"

	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"gorm.io/gorm"
)

// EligibilityService partitions the food catalog into allowed vs excluded
// for one user profile and mood code. Five independent rules (allergy,
// blood type, mood, BMI bracket, age range) combine as a plain conjunction;
// per-rule exclusion reasons stay available for troubleshooting.
type EligibilityService struct {
	db *gorm.DB
}

func NewEligibilityService(db *gorm.DB) *EligibilityService {
	return &EligibilityService{db: db}
}

// ExclusionReport collects, per rule, FoodID -> human-readable reasons.
// Diagnostic only; the allowed set is what drives suggestions.
type ExclusionReport struct {
	Allergy   map[string][]string `json:"allergies"`
	BloodType map[string][]string `json:"bloodtype"`
	Mood      map[string][]string `json:"mood"`
	BMI       map[string][]string `json:"bmi"`
	Age       map[string][]string `json:"age"`
}

type catalogEntry struct {
	Food        models.FoodItem
	Ingredients []models.Ingredient
}

// AllowedFoods returns the FoodIDs satisfying every rule, in catalog order.
func (s *EligibilityService) AllowedFoods(profile *HealthProfile, moodCode string) ([]string, error) {
	catalog, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	allergenIDs, err := s.matchedAllergenIDs(profile.Allergies)
	if err != nil {
		return nil, err
	}

	var allowed []string
	for _, entry := range catalog {
		if len(allergenIDs) > 0 && len(allergyReasons(entry, allergenIDs)) > 0 {
			continue
		}
		if !bloodTypeAllowed(entry, profile.BloodType) {
			continue
		}
		if !utils.TokenMatch(entry.Food.MoodCategoryID, moodCode) {
			continue
		}
		if !bmiBracketAllowed(entry.Food.BMI, profile.BMI) {
			continue
		}
		if !ageAllowed(entry.Food.AgeRange, profile.Age) {
			continue
		}
		allowed = append(allowed, entry.Food.FoodID)
	}
	return allowed, nil
}

// Exclusions evaluates each rule against the full catalog independently,
// the way the audit log wants it: a food can show up under several rules.
func (s *EligibilityService) Exclusions(profile *HealthProfile, moodCode string) (*ExclusionReport, error) {
	catalog, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}
	allergenIDs, err := s.matchedAllergenIDs(profile.Allergies)
	if err != nil {
		return nil, err
	}

	report := &ExclusionReport{
		Allergy:   map[string][]string{},
		BloodType: map[string][]string{},
		Mood:      map[string][]string{},
		BMI:       map[string][]string{},
		Age:       map[string][]string{},
	}

	for _, entry := range catalog {
		id := entry.Food.FoodID

		if len(allergenIDs) > 0 {
			if names := allergyReasons(entry, allergenIDs); len(names) > 0 {
				report.Allergy[id] = names
			}
		}
		if !bloodTypeAllowed(entry, profile.BloodType) {
			report.BloodType[id] = append(report.BloodType[id], "Blood mismatch")
		}
		if !utils.TokenMatch(entry.Food.MoodCategoryID, moodCode) {
			report.Mood[id] = append(report.Mood[id], "Mood mismatch")
		}
		if profile.BMI >= 25 && entry.Food.BMI == models.BMIBracketUnder25 {
			report.BMI[id] = append(report.BMI[id],
				fmt.Sprintf("User BMI=%.2f >= 25", profile.BMI))
		}
		if !ageAllowed(entry.Food.AgeRange, profile.Age) {
			report.Age[id] = append(report.Age[id],
				"Not in age_range "+entry.Food.AgeRange)
		}
	}
	return report, nil
}

// loadCatalog reads the full reference data set: every food with its
// ingredient rows attached.
func (s *EligibilityService) loadCatalog() ([]catalogEntry, error) {
	var foods []models.FoodItem
	if err := s.db.Order("food_id").Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("%w: load foods: %v", utils.ErrStore, err)
	}

	var links []models.FoodIngredient
	if err := s.db.Find(&links).Error; err != nil {
		return nil, fmt.Errorf("%w: load food_ingredients: %v", utils.ErrStore, err)
	}

	var ingredients []models.Ingredient
	if err := s.db.Find(&ingredients).Error; err != nil {
		return nil, fmt.Errorf("%w: load ingredients: %v", utils.ErrStore, err)
	}

	byID := make(map[string]models.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.IngredientID] = ing
	}
	perFood := make(map[string][]models.Ingredient, len(foods))
	for _, link := range links {
		if ing, ok := byID[link.IngredientID]; ok {
			perFood[link.FoodID] = append(perFood[link.FoodID], ing)
		}
	}

	catalog := make([]catalogEntry, 0, len(foods))
	for _, f := range foods {
		catalog = append(catalog, catalogEntry{Food: f, Ingredients: perFood[f.FoodID]})
	}
	return catalog, nil
}

// matchedAllergenIDs maps the user's free-text allergy names to allergen IDs
// by exact case-insensitive title match. Unknown names match nothing.
func (s *EligibilityService) matchedAllergenIDs(allergies []string) ([]string, error) {
	if len(allergies) == 0 {
		return nil, nil
	}
	var allergens []models.Allergen
	if err := s.db.Find(&allergens).Error; err != nil {
		return nil, fmt.Errorf("%w: load allergens: %v", utils.ErrStore, err)
	}

	seen := map[string]bool{}
	var ids []string
	for _, al := range allergens {
		title := strings.ToLower(strings.TrimSpace(al.ALTitle))
		for _, name := range allergies {
			if title == name && !seen[al.ALID] {
				seen[al.ALID] = true
				ids = append(ids, al.ALID)
			}
		}
	}
	return ids, nil
}

// allergyReasons lists ingredient names carrying any of the matched
// allergen IDs. Non-empty means the food is excluded by the allergy rule.
func allergyReasons(entry catalogEntry, allergenIDs []string) []string {
	var names []string
	for _, ing := range entry.Ingredients {
		if utils.TokenMatchAny(ing.Allergy, allergenIDs) {
			names = append(names, ing.IngredientName)
		}
	}
	return names
}

// bloodTypeAllowed: a food is allowed iff at least one ingredient row
// token-matches the normalized blood type. Foods with no ingredient rows
// never qualify (they would not survive the catalog join either).
func bloodTypeAllowed(entry catalogEntry, normalizedBT string) bool {
	for _, ing := range entry.Ingredients {
		if utils.TokenMatch(ing.BloodType, normalizedBT) {
			return true
		}
	}
	return false
}

// bmiBracketAllowed: "N/A" means unconstrained; the under-25 bracket only
// admits users below the cutoff; any other tag never qualifies.
func bmiBracketAllowed(bracket string, userBMI float64) bool {
	switch bracket {
	case models.BMIBracketAny:
		return true
	case models.BMIBracketUnder25:
		return userBMI < 25
	default:
		return false
	}
}

// ageAllowed: inclusive [min, max]; unparseable ranges fail open.
func ageAllowed(ageRange string, age int) bool {
	min, max, ok := utils.ParseAgeRange(ageRange)
	if !ok {
		return true
	}
	return age >= min && age <= max
}
