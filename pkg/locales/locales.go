package locales

import (
	_ "embed"
	"encoding/json"
	"log"
)

//go:embed locales.json
var localesJSON []byte

// Locales содержит все текстовые строки из locales.json
type Locales struct {
	General     General    `json:"general"`
	Onboarding  Onboarding `json:"onboarding"`
	Tracker     Tracker    `json:"tracker"`
	Report      Report     `json:"report"`
	Calculate   string     `json:"calculate"`
	Temperature struct {
		Hot    string `json:"hot"`
		Normal string `json:"normal"`
	} `json:"temperature"`
}

type General struct {
	Start          string `json:"start"`
	Help           string `json:"help"`
	Unknown        string `json:"unknown"`
	NoProfile      string `json:"no_profile"`
	RetryLater     string `json:"retry_later"`
	TryAgainSuffix string `json:"try_again_suffix"`
}

// NumericField — тексты одного числового шага анкеты: приглашение и
// сообщения для каждого уровня валидации (тип → отрицательное → границы).
type NumericField struct {
	Prompt    string `json:"prompt"`
	Hint      string `json:"hint"`
	HotHint   string `json:"hot_hint"`
	NotNumber string `json:"not_number"`
	Negative  string `json:"negative"`
	TooLow    string `json:"too_low"`
	TooHigh   string `json:"too_high"`
}

type Onboarding struct {
	Sex struct {
		Prompt     string `json:"prompt"`
		Male       string `json:"male"`
		Female     string `json:"female"`
		UseButtons string `json:"use_buttons"`
	} `json:"sex"`
	Weight   NumericField `json:"weight"`
	Height   NumericField `json:"height"`
	Age      NumericField `json:"age"`
	Activity NumericField `json:"activity"`
	City     struct {
		Prompt string `json:"prompt"`
		Empty  string `json:"empty"`
	} `json:"city"`
	CalorieGoal NumericField `json:"calorie_goal"`
	WaterGoal   NumericField `json:"water_goal"`
}

type Tracker struct {
	WaterNotNumber     string `json:"water_not_number"`
	WaterNegative      string `json:"water_negative"`
	WaterAdded         string `json:"water_added"`
	WaterGoalReached   string `json:"water_goal_reached"`
	FoodEmpty          string `json:"food_empty"`
	FoodAdded          string `json:"food_added"`
	FoodGoalReached    string `json:"food_goal_reached"`
	WorkoutUsage       string `json:"workout_usage"`
	WorkoutNotNumber   string `json:"workout_not_number"`
	WorkoutNegative    string `json:"workout_negative"`
	WorkoutLogged      string `json:"workout_logged"`
	WorkoutGoalReached string `json:"workout_goal_reached"`
}

type Report struct {
	Profile   string `json:"profile"`
	SexMale   string `json:"sex_male"`
	SexFemale string `json:"sex_female"`
	Progress  string `json:"progress"`
}

var L *Locales

func init() {
	L = &Locales{}
	if err := json.Unmarshal(localesJSON, L); err != nil {
		log.Fatalf("Не удалось распарсить locales.json: %v", err)
	}
}

// Get возвращает указатель на локали
func Get() *Locales {
	return L
}
