package onboarding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/113578/getfitwithbot/internal/fitness"
	"github.com/113578/getfitwithbot/internal/weather"
	"github.com/113578/getfitwithbot/pkg/locales"
	"github.com/113578/getfitwithbot/pkg/models"
)

// step — один шаг анкеты: как спросить и как принять ответ.
// apply возвращает ошибку валидации с готовым для пользователя текстом;
// при ошибке сессия остаётся на том же шаге.
type step struct {
	field       string
	sexKeyboard bool
	prompt      func(ctx context.Context, m *Manager, s *Session) string
	apply       func(s *Session, input string) error
}

// intField строит обработчик числового шага. Порядок проверок фиксирован:
// тип → отрицательное значение → нижняя граница → верхняя граница.
// allowZero различает поля, где ноль допустим (уровень активности),
// и поля, где ноль отвергается как отрицательное значение (цели, вес).
func intField(msgs locales.NumericField, allowZero bool, min, max int, set func(s *Session, v int)) func(*Session, string) error {
	return func(s *Session, input string) error {
		v, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			return errors.New(msgs.NotNumber)
		}
		if v < 0 || (!allowZero && v == 0) {
			return errors.New(msgs.Negative)
		}
		if v < min {
			return errors.New(msgs.TooLow)
		}
		if max > 0 && v > max {
			return errors.New(msgs.TooHigh)
		}
		set(s, v)
		return nil
	}
}

func staticPrompt(text string) func(context.Context, *Manager, *Session) string {
	return func(context.Context, *Manager, *Session) string { return text }
}

// newSteps объявляет схему анкеты: строго упорядоченный список полей
// с приглашениями и правилами валидации из §3 модели данных.
func newSteps() []step {
	l := locales.Get().Onboarding

	return []step{
		{
			field:       "sex",
			sexKeyboard: true,
			prompt:      staticPrompt(l.Sex.Prompt),
			apply: func(s *Session, input string) error {
				switch input {
				case models.SexMale, models.SexFemale:
					s.Sex = input
					return nil
				default:
					// Текст вместо нажатия кнопки — просим выбрать кнопкой.
					return errors.New(l.Sex.UseButtons)
				}
			},
		},
		{
			field:  "weight",
			prompt: staticPrompt(l.Weight.Prompt),
			apply:  intField(l.Weight, false, 10, 200, func(s *Session, v int) { s.Weight = v }),
		},
		{
			field:  "height",
			prompt: staticPrompt(l.Height.Prompt),
			apply:  intField(l.Height, false, 100, 250, func(s *Session, v int) { s.Height = v }),
		},
		{
			field:  "age",
			prompt: staticPrompt(l.Age.Prompt),
			apply:  intField(l.Age, false, 10, 100, func(s *Session, v int) { s.Age = v }),
		},
		{
			field:  "activity",
			prompt: staticPrompt(l.Activity.Prompt),
			apply:  intField(l.Activity, true, 0, 7, func(s *Session, v int) { s.ActivityLevel = v }),
		},
		{
			field:  "city",
			prompt: staticPrompt(l.City.Prompt),
			apply: func(s *Session, input string) error {
				city := strings.TrimSpace(input)
				if city == "" {
					return errors.New(l.City.Empty)
				}
				s.City = city
				return nil
			},
		},
		{
			field: "calorie_goal",
			// К приглашению добавляется рекомендация по Миффлину-Сан Жеору:
			// все нужные для расчёта поля к этому шагу уже собраны.
			prompt: func(_ context.Context, _ *Manager, s *Session) string {
				hint := fmt.Sprintf(l.CalorieGoal.Hint,
					fitness.BasalEnergy(s.Sex, s.Weight, s.Height, s.Age, s.ActivityLevel))
				return l.CalorieGoal.Prompt + "\n" + hint
			},
			apply: intField(l.CalorieGoal, false, 1, 0, func(s *Session, v int) { s.CalorieGoal = v }),
		},
		{
			field: "water_goal",
			// Рекомендация по воде плюс погодная подсказка. Подсказки
			// совещательные: ошибка погодного сервиса не мешает анкете.
			prompt: func(ctx context.Context, m *Manager, s *Session) string {
				text := l.WaterGoal.Prompt + "\n" +
					fmt.Sprintf(l.WaterGoal.Hint, fitness.WaterIntake(s.Sex, s.Weight, s.ActivityLevel))
				if m.weather != nil {
					temp, err := m.weather.Temperature(ctx, s.City)
					switch {
					case err != nil:
						log.Printf("Не удалось получить погоду для %q: %v", s.City, err)
					case temp >= weather.HotThreshold:
						text += "\n" + fmt.Sprintf(l.WaterGoal.HotHint, s.City, temp)
					}
				}
				return text
			},
			apply: intField(l.WaterGoal, false, 1, 0, func(s *Session, v int) { s.WaterGoal = v }),
		},
	}
}
