package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/113578/getfitwithbot/internal/bot"
	"github.com/113578/getfitwithbot/internal/config"
	"github.com/113578/getfitwithbot/internal/database"
	"github.com/113578/getfitwithbot/internal/exercise"
	"github.com/113578/getfitwithbot/internal/nutrition"
	"github.com/113578/getfitwithbot/internal/onboarding"
	"github.com/113578/getfitwithbot/internal/tracker"
	"github.com/113578/getfitwithbot/internal/translate"
	"github.com/113578/getfitwithbot/internal/weather"
)

func main() {
	// Загрузка конфигурации из переменных окружения
	log.Println("Загрузка конфигурации...")
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Не удалось загрузить конфигурацию: %v", err)
	}

	// Создание базы данных
	log.Println("Создание базы данных...")
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Не удалось создать базу данных: %v", err)
	}
	defer db.Close()

	// Клиенты внешних сервисов
	weatherClient := weather.NewClient(cfg.OpenWeatherToken)
	nutritionClient := nutrition.NewClient(cfg.NutritionixID, cfg.NutritionixToken)
	exerciseClient := exercise.NewClient(cfg.APINinjasToken)
	translateClient := translate.NewClient()

	onboardingManager := onboarding.NewManager(db, weatherClient)
	dailyTracker := tracker.New(db, nutritionClient, exerciseClient, translateClient)

	b, err := bot.New(cfg.TelegramBotToken, db, onboardingManager, dailyTracker, weatherClient)
	if err != nil {
		log.Fatalf("Не удалось создать бота: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Println("Бот запущен.")
	if err := b.Start(ctx); err != nil {
		log.Fatalf("Ошибка обработки обновлений: %v", err)
	}
}
