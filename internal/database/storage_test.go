package database_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/113578/getfitwithbot/internal/database"
	"github.com/113578/getfitwithbot/pkg/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("открытие базы: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProfileRoundTrip(t *testing.T) {
	db := newTestDB(t)

	p := &models.Profile{
		UserID: 42, Sex: models.SexFemale, Weight: 60, Height: 165, Age: 25,
		ActivityLevel: 2, City: "Санкт-Петербург", CalorieGoal: 1900, WaterGoal: 1800,
		LoggedWater: 300, LoggedCalories: 450, BurnedCalories: 120,
	}
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("сохранение: %v", err)
	}

	got, err := db.Profile(42)
	if err != nil {
		t.Fatalf("загрузка: %v", err)
	}
	if *got != *p {
		t.Fatalf("загружено %+v, ожидалось %+v", got, p)
	}
}

func TestSaveProfileOverwrites(t *testing.T) {
	db := newTestDB(t)

	p := &models.Profile{
		UserID: 42, Sex: models.SexMale, Weight: 70, Height: 175, Age: 30,
		ActivityLevel: 3, City: "Москва", CalorieGoal: 2500, WaterGoal: 2000,
	}
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("сохранение: %v", err)
	}

	p.LoggedWater = 500
	p.LoggedCalories = 700
	if err := db.SaveProfile(p); err != nil {
		t.Fatalf("повторное сохранение: %v", err)
	}

	got, err := db.Profile(42)
	if err != nil {
		t.Fatalf("загрузка: %v", err)
	}
	if got.LoggedWater != 500 || got.LoggedCalories != 700 {
		t.Fatalf("счётчики не обновились: %+v", got)
	}
}

func TestProfileNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Profile(999); !errors.Is(err, database.ErrProfileNotFound) {
		t.Fatalf("ожидался ErrProfileNotFound, получено: %v", err)
	}
}
