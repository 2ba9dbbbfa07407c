package models

// Пол пользователя. От него зависят формулы калорий и воды.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Profile представляет сохранённый профиль пользователя: физические
// параметры, дневные цели и накопленные за день счётчики.
type Profile struct {
	UserID         int64
	Sex            string // SexMale или SexFemale
	Weight         int    // кг
	Height         int    // см
	Age            int    // лет
	ActivityLevel  int    // активных дней в неделю, 0..7
	City           string
	CalorieGoal    int // ккал
	WaterGoal      int // мл
	LoggedWater    int // мл, выпито
	LoggedCalories int // ккал, потреблено (за вычетом тренировок)
	BurnedCalories int // ккал, сожжено на тренировках
}
