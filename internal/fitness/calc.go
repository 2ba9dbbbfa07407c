// Package fitness содержит чистые расчёты дневных норм: формула
// Миффлина-Сан Жеора для калорий и весовая формула для воды.
package fitness

import "github.com/113578/getfitwithbot/pkg/models"

const poundsPerKilogram = 2.20462262

// activityCoef — надбавка за активность: (активные дни + 1) * 0.1.
// При нулевой активности коэффициент всё равно равен 0.1.
func activityCoef(activityLevel int) float64 {
	return float64(activityLevel+1) * 0.1
}

// BasalEnergy рассчитывает дневной расход калорий по Миффлину-Сан Жеору
// с учётом активности. Результат усекается до целого, не округляется.
func BasalEnergy(sex string, weight, height, age, activityLevel int) int {
	bmr := 10*float64(weight) + 6.25*float64(height) - 5*float64(age)
	if sex == models.SexMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	bmr += bmr * activityCoef(activityLevel)
	return int(bmr)
}

// WaterIntake рассчитывает дневную норму воды в мл: 35 мл на кг для
// мужчин, 31 мл на кг для женщин, с той же надбавкой за активность.
func WaterIntake(sex string, weight, activityLevel int) int {
	perKg := 31
	if sex == models.SexMale {
		perKg = 35
	}
	water := float64(weight * perKg)
	water += water * activityCoef(activityLevel)
	return int(water)
}

// PoundsFromKilograms переводит вес в фунты для провайдера тренировок.
func PoundsFromKilograms(kg int) float64 {
	return float64(kg) * poundsPerKilogram
}
