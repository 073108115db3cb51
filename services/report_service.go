package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"gorm.io/gorm"
)

// ReportService builds the eaten-history report: each eaten meal joined
// with the mood code of the suggestion that proposed it, plus before/after
// mood histograms.
type ReportService struct{ db *gorm.DB }

func NewReportService(db *gorm.DB) *ReportService { return &ReportService{db: db} }

type ReportRow struct {
	FoodImage  string `json:"foodImage"`
	FoodName   string `json:"foodName"`
	DateTime   string `json:"dateTime"`
	MoodBefore string `json:"moodBefore"`
	MoodAfter  string `json:"moodAfter"`
}

type BarItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ReportData struct {
	TableData        []ReportRow `json:"tableData"`
	TotalMeals       int         `json:"totalMeals"`
	MoodBarData      []BarItem   `json:"moodBarData"`      // mood before
	MoodAfterBarData []BarItem   `json:"moodAfterBarData"` // mood after
}

// afterOrder is the stable histogram order for the "after" chart. The
// FeelBetter column accumulated three generations of values, all tolerated.
var afterOrder = []string{"Happy", "Sad", "Angry", "Neutral", "Better", "Same", "Worse"}

type reportScan struct {
	FoodID        string
	EatenDateTime time.Time
	FeelBetter    string
	EatenFoodName  string
	EatenFoodImage string
	MoodBeforeID   string
}

// Report covers [start, end): the controller extends end by one day so the
// end date is inclusive for callers.
func (s *ReportService) Report(ctx context.Context, userID string, start, end time.Time) (*ReportData, error) {
	var rows []reportScan
	err := s.db.WithContext(ctx).
		Table("user_eaten ue").
		Select(`ue.food_id, ue.eaten_date_time, ue.feel_better,
			fi.food_name AS eaten_food_name,
			fi.image_url AS eaten_food_image,
			fs.mood_category_id AS mood_before_id`).
		Joins("JOIN food_items fi ON ue.food_id = fi.food_id").
		Joins("LEFT JOIN food_suggestions fs ON fs.user_id = ue.user_id AND fs.food_id = ue.food_id").
		Where("ue.user_id = ? AND ue.eaten_date_time >= ? AND ue.eaten_date_time < ?", userID, start, end).
		Order("ue.eaten_date_time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("%w: report query: %v", utils.ErrStore, err)
	}

	beforeCounts := map[string]int{
		models.MoodHappy: 0, models.MoodSad: 0, models.MoodAngry: 0, models.MoodNeutral: 0,
	}
	afterCounts := map[string]int{}
	for _, lbl := range afterOrder {
		afterCounts[lbl] = 0
	}

	table := []ReportRow{}
	for _, r := range rows {
		name := r.EatenFoodName
		if name == "" {
			name = "Unknown Food"
		}
		image := r.EatenFoodImage
		if image == "" {
			image = "/images/default_food.png"
		}

		moodBefore := "Unknown"
		if _, ok := beforeCounts[r.MoodBeforeID]; ok {
			beforeCounts[r.MoodBeforeID]++
			moodBefore = models.MoodLabels[r.MoodBeforeID]
		}

		moodAfter := labelFeelBetter(r.FeelBetter)
		if _, ok := afterCounts[moodAfter]; ok {
			afterCounts[moodAfter]++
		}

		table = append(table, ReportRow{
			FoodImage:  image,
			FoodName:   name,
			DateTime:   r.EatenDateTime.Format("2006-01-02 15:04"),
			MoodBefore: moodBefore,
			MoodAfter:  moodAfter,
		})
	}

	out := &ReportData{
		TableData:  table,
		TotalMeals: len(table),
	}
	for _, code := range []string{models.MoodHappy, models.MoodSad, models.MoodAngry, models.MoodNeutral} {
		out.MoodBarData = append(out.MoodBarData, BarItem{
			Label: models.MoodLabels[code],
			Count: beforeCounts[code],
		})
	}
	for _, lbl := range afterOrder {
		out.MoodAfterBarData = append(out.MoodAfterBarData, BarItem{Label: lbl, Count: afterCounts[lbl]})
	}
	return out, nil
}

// labelFeelBetter unifies the three value generations stored in FeelBetter:
// legacy numeric ("1"/"0"/"-1"), mood codes (MD01..MD04) and plain labels.
func labelFeelBetter(v string) string {
	switch v {
	case "":
		return ""
	case "1":
		return "Better"
	case "0":
		return "Same"
	case "-1":
		return "Worse"
	}
	if lbl, ok := models.MoodLabels[v]; ok {
		return lbl
	}
	for _, lbl := range afterOrder {
		if v == lbl {
			return lbl
		}
	}
	return "Unknown"
}
