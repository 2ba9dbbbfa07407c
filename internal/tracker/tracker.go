// Package tracker реализует дневной учёт: вода, еда, тренировки и
// прогресс. Каждая операция загружает профиль заново, изменяет счётчики
// и сохраняет результат — долгоживущего состояния здесь нет.
package tracker

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/113578/getfitwithbot/internal/apperr"
	"github.com/113578/getfitwithbot/internal/fitness"
	"github.com/113578/getfitwithbot/internal/report"
	"github.com/113578/getfitwithbot/pkg/locales"
	"github.com/113578/getfitwithbot/pkg/models"
)

// ProfileStore — хранилище профилей (реализуется internal/database).
type ProfileStore interface {
	Profile(userID int64) (*models.Profile, error)
	SaveProfile(p *models.Profile) error
}

// NutritionProvider определяет калорийность еды по свободному описанию.
type NutritionProvider interface {
	Calories(ctx context.Context, query string) (int, error)
}

// ExerciseProvider определяет сожжённые калории по тренировке.
type ExerciseProvider interface {
	CaloriesBurned(ctx context.Context, activity string, weightLbs float64, minutes int) (int, error)
}

// Translator переводит запрос на язык провайдеров (англ.).
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

type Tracker struct {
	store      ProfileStore
	nutrition  NutritionProvider
	exercise   ExerciseProvider
	translator Translator
}

func New(store ProfileStore, nutrition NutritionProvider, exercise ExerciseProvider, translator Translator) *Tracker {
	return &Tracker{
		store:      store,
		nutrition:  nutrition,
		exercise:   exercise,
		translator: translator,
	}
}

// retry оборачивает текст валидации в пользовательскую ошибку
// с приглашением повторить ввод.
func retry(msg string) error {
	return apperr.User(msg + locales.Get().General.TryAgainSuffix)
}

// translated переводит запрос для англоязычных провайдеров.
// Перевод совещательный: при ошибке используется исходный текст.
func (t *Tracker) translated(ctx context.Context, text string) string {
	if t.translator == nil {
		return text
	}
	out, err := t.translator.Translate(ctx, text)
	if err != nil {
		log.Printf("Не удалось перевести %q: %v", text, err)
		return text
	}
	return out
}

// LogWater добавляет выпитую воду и отвечает, сколько осталось до цели.
func (t *Tracker) LogWater(ctx context.Context, userID int64, args string) (string, error) {
	l := locales.Get().Tracker

	amount, err := strconv.Atoi(strings.TrimSpace(args))
	if err != nil {
		return "", retry(l.WaterNotNumber)
	}
	if amount <= 0 {
		return "", retry(l.WaterNegative)
	}

	p, err := t.store.Profile(userID)
	if err != nil {
		return "", err
	}
	p.LoggedWater += amount
	if err := t.store.SaveProfile(p); err != nil {
		return "", err
	}

	if p.LoggedWater < p.WaterGoal {
		return fmt.Sprintf(l.WaterAdded, amount, p.WaterGoal-p.LoggedWater), nil
	}
	return fmt.Sprintf(l.WaterGoalReached, amount), nil
}

// LogFood определяет калорийность описанной еды и добавляет её к счётчику.
func (t *Tracker) LogFood(ctx context.Context, userID int64, args string) (string, error) {
	l := locales.Get().Tracker

	query := strings.TrimSpace(args)
	if query == "" {
		return "", retry(l.FoodEmpty)
	}

	calories, err := t.nutrition.Calories(ctx, t.translated(ctx, query))
	if err != nil {
		return "", fmt.Errorf("поиск калорийности: %w", err)
	}

	p, err := t.store.Profile(userID)
	if err != nil {
		return "", err
	}
	p.LoggedCalories += calories
	if err := t.store.SaveProfile(p); err != nil {
		return "", err
	}

	if p.LoggedCalories < p.CalorieGoal {
		return fmt.Sprintf(l.FoodAdded, calories, p.CalorieGoal-p.LoggedCalories), nil
	}
	return fmt.Sprintf(l.FoodGoalReached, calories), nil
}

// LogWorkout учитывает тренировку: сожжённые калории растут, а чистое
// потребление уменьшается на ту же величину.
func (t *Tracker) LogWorkout(ctx context.Context, userID int64, args string) (string, error) {
	l := locales.Get().Tracker

	parts := strings.Fields(args)
	if len(parts) != 2 {
		return "", apperr.User(l.WorkoutUsage)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", retry(l.WorkoutNotNumber)
	}
	if minutes <= 0 {
		return "", retry(l.WorkoutNegative)
	}

	// Вес нужен провайдеру, поэтому профиль загружается до запроса.
	p, err := t.store.Profile(userID)
	if err != nil {
		return "", err
	}

	activity := t.translated(ctx, parts[0])
	burned, err := t.exercise.CaloriesBurned(ctx, activity, fitness.PoundsFromKilograms(p.Weight), minutes)
	if err != nil {
		return "", fmt.Errorf("поиск тренировки: %w", err)
	}

	p.BurnedCalories += burned
	p.LoggedCalories -= burned
	if err := t.store.SaveProfile(p); err != nil {
		return "", err
	}

	if p.LoggedCalories < p.CalorieGoal {
		return fmt.Sprintf(l.WorkoutLogged, burned, minutes, p.CalorieGoal-p.LoggedCalories), nil
	}
	return fmt.Sprintf(l.WorkoutGoalReached, burned, minutes), nil
}

// Progress возвращает блок прогресса. Счётчики не изменяются.
func (t *Tracker) Progress(userID int64) (string, error) {
	p, err := t.store.Profile(userID)
	if err != nil {
		return "", err
	}
	return report.Progress(p), nil
}
