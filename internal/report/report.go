// Package report форматирует профиль и прогресс для ответов в чат.
package report

import (
	"fmt"

	"github.com/113578/getfitwithbot/pkg/locales"
	"github.com/113578/getfitwithbot/pkg/models"
)

func sexLabel(sex string) string {
	l := locales.Get().Report
	if sex == models.SexMale {
		return l.SexMale
	}
	return l.SexFemale
}

// ProfileSummary возвращает сводку профиля. Один и тот же текст
// используется после завершения анкеты и для /list_profile.
func ProfileSummary(p *models.Profile) string {
	l := locales.Get().Report
	return fmt.Sprintf(l.Profile,
		sexLabel(p.Sex), p.Weight, p.Height, p.Age, p.ActivityLevel,
		p.City, p.CalorieGoal, p.WaterGoal,
	)
}

// Progress возвращает блок прогресса по воде и калориям.
// Профиль не изменяется: повторный вызов даёт тот же текст.
func Progress(p *models.Profile) string {
	l := locales.Get().Report
	return fmt.Sprintf(l.Progress,
		p.LoggedWater, p.WaterGoal, p.WaterGoal-p.LoggedWater,
		p.LoggedCalories, p.CalorieGoal, p.BurnedCalories, p.CalorieGoal-p.LoggedCalories,
	)
}
