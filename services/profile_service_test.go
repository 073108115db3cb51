package services

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ThanapatNon/FOODMOOD/models"
	"github.com/ThanapatNon/FOODMOOD/utils"
)

func TestResolveHealthProfile(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, models.User{
		UserID:    "u1",
		Birthday:  time.Date(2001, 6, 30, 0, 0, 0, 0, time.UTC),
		BloodType: " o + ",
		Weight:    82,
		Height:    180,
		Allergies: "Peanut, Shellfish",
	})

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	p, err := resolveHealthProfileAt(db, "u1", now)
	if err != nil {
		t.Fatalf("resolveHealthProfileAt: %v", err)
	}
	if p.Age != 24 {
		t.Errorf("Age = %d, want 24 (birthday not reached yet)", p.Age)
	}
	if math.Abs(p.BMI-25.31) > 0.01 {
		t.Errorf("BMI = %.2f, want 25.31", p.BMI)
	}
	if p.BloodType != "O" {
		t.Errorf("BloodType = %q, want O", p.BloodType)
	}
	if len(p.Allergies) != 2 || p.Allergies[0] != "peanut" || p.Allergies[1] != "shellfish" {
		t.Errorf("Allergies = %v, want [peanut shellfish]", p.Allergies)
	}
}

func TestResolveHealthProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, err := ResolveHealthProfile(db, "missing")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
