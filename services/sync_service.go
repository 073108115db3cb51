package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThanapatNon/FOODMOOD/logger"
	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncService reconciles the profile document store into the relational
// users table, one way: insert/update every document, then delete relational
// rows whose UserID no longer appears in the document set.
//
// Known gap, kept on purpose: concurrent runs are not serialized, so a
// delete can race an insert for a UserID that arrives mid-run. The sync is
// meant to run as a single periodic job.
type SyncService struct {
	db       *gorm.DB
	coll     *mongo.Collection
	interval time.Duration
	backoff  time.Duration
}

func NewSyncService(db *gorm.DB, coll *mongo.Collection, interval time.Duration) *SyncService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &SyncService{db: db, coll: coll, interval: interval, backoff: 2 * time.Second}
}

// SyncStats summarizes one reconciliation pass.
type SyncStats struct {
	Inserted int
	Updated  int
	Deleted  int
}

// profileDoc is the document-store shape; profile fields nest under
// healthData.
type profileDoc struct {
	ID         string `bson:"_id"`
	HealthData struct {
		Weight    float64  `bson:"weight"`
		Height    float64  `bson:"height"`
		Birthday  string   `bson:"birthday"` // YYYY-MM-DD
		Allergies []string `bson:"allergies"`
		BloodType string   `bson:"bloodType"`
	} `bson:"healthData"`
}

// Start polls until ctx is cancelled. A transient remote failure gets a
// short fixed backoff and the batch resumes on its next scheduled run.
func (s *SyncService) Start(ctx context.Context) {
	logger.Info("profile sync started", zap.Duration("interval", s.interval))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("profile sync stopped")
			return
		case <-ticker.C:
			stats, err := s.RunOnce(ctx)
			if err != nil {
				logger.Error("profile sync run failed", zap.Error(err))
				if errors.Is(err, utils.ErrTransientSync) {
					time.Sleep(s.backoff)
				}
				continue
			}
			logger.Info("profile sync complete",
				zap.Int("inserted", stats.Inserted),
				zap.Int("updated", stats.Updated),
				zap.Int("deleted", stats.Deleted))
		}
	}
}

// RunOnce performs a single full reconciliation pass.
func (s *SyncService) RunOnce(ctx context.Context) (SyncStats, error) {
	var stats SyncStats

	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return stats, fmt.Errorf("%w: fetch profile documents: %v", utils.ErrTransientSync, err)
	}
	var docs []profileDoc
	if err := cur.All(ctx, &docs); err != nil {
		return stats, fmt.Errorf("%w: decode profile documents: %v", utils.ErrTransientSync, err)
	}

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if doc.ID == "" {
			continue
		}
		seen[doc.ID] = true

		inserted, err := s.upsertProfile(doc)
		if err != nil {
			return stats, err
		}
		if inserted {
			stats.Inserted++
		} else {
			stats.Updated++
		}
	}

	deleted, err := s.deleteMissing(seen)
	if err != nil {
		return stats, err
	}
	stats.Deleted = deleted
	return stats, nil
}

func (s *SyncService) upsertProfile(doc profileDoc) (inserted bool, err error) {
	birthday, err := time.Parse("2006-01-02", doc.HealthData.Birthday)
	if err != nil {
		logger.Warn("invalid birthday in profile document, using default",
			zap.String("user_id", doc.ID),
			zap.String("birthday", doc.HealthData.Birthday))
		birthday = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	allergies := ""
	for i, a := range doc.HealthData.Allergies {
		if i > 0 {
			allergies += ", "
		}
		allergies += a
	}

	var existing models.User
	err = s.db.First(&existing, "user_id = ?", doc.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user := models.User{
			UserID:    doc.ID,
			Birthday:  birthday,
			BloodType: doc.HealthData.BloodType,
			Weight:    doc.HealthData.Weight,
			Height:    doc.HealthData.Height,
			Allergies: allergies,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return false, fmt.Errorf("%w: insert user %s: %v", utils.ErrStore, doc.ID, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: lookup user %s: %v", utils.ErrStore, doc.ID, err)
	}

	existing.Birthday = birthday
	existing.BloodType = doc.HealthData.BloodType
	existing.Weight = doc.HealthData.Weight
	existing.Height = doc.HealthData.Height
	existing.Allergies = allergies
	if err := s.db.Save(&existing).Error; err != nil {
		return false, fmt.Errorf("%w: update user %s: %v", utils.ErrStore, doc.ID, err)
	}
	return false, nil
}

func (s *SyncService) deleteMissing(seen map[string]bool) (int, error) {
	var ids []string
	if err := s.db.Model(&models.User{}).Pluck("user_id", &ids).Error; err != nil {
		return 0, fmt.Errorf("%w: list users: %v", utils.ErrStore, err)
	}

	deleted := 0
	for _, id := range ids {
		if seen[id] {
			continue
		}
		if err := s.db.Delete(&models.User{}, "user_id = ?", id).Error; err != nil {
			return deleted, fmt.Errorf("%w: delete user %s: %v", utils.ErrStore, id, err)
		}
		deleted++
	}
	return deleted, nil
}
