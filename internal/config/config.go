package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramBotToken string
	OpenWeatherToken string
	NutritionixID    string
	NutritionixToken string
	APINinjasToken   string
	DatabasePath     string
}

// Load читает конфигурацию из переменных окружения; .env опционален.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		OpenWeatherToken: os.Getenv("OPENWEATHERMAP_TOKEN"),
		NutritionixID:    os.Getenv("NUTRITIONIX_ID"),
		NutritionixToken: os.Getenv("NUTRITIONIX_TOKEN"),
		APINinjasToken:   os.Getenv("APININJAS_TOKEN"),
		DatabasePath:     os.Getenv("DATABASE_PATH"),
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "getfitwithbot.db"
	}

	required := []struct {
		name, value string
	}{
		{"TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken},
		{"OPENWEATHERMAP_TOKEN", cfg.OpenWeatherToken},
		{"NUTRITIONIX_ID", cfg.NutritionixID},
		{"NUTRITIONIX_TOKEN", cfg.NutritionixToken},
		{"APININJAS_TOKEN", cfg.APINinjasToken},
	}
	for _, v := range required {
		if v.value == "" {
			return nil, fmt.Errorf("не задана переменная окружения %s", v.name)
		}
	}

	return cfg, nil
}
