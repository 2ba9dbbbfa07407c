package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/113578/getfitwithbot/internal/apperr"
	"github.com/113578/getfitwithbot/internal/database"
	"github.com/113578/getfitwithbot/internal/fitness"
	"github.com/113578/getfitwithbot/internal/onboarding"
	"github.com/113578/getfitwithbot/internal/report"
	"github.com/113578/getfitwithbot/internal/tracker"
	"github.com/113578/getfitwithbot/internal/weather"
	"github.com/113578/getfitwithbot/pkg/locales"
)

// Размер персональной очереди событий пользователя.
const queueSize = 16

// answer — ответ обработчика команды: текст и признак клавиатуры пола.
type answer struct {
	text        string
	sexKeyboard bool
}

type commandFunc func(ctx context.Context, userID int64, args string) answer

// Bot представляет Telegram бота
type Bot struct {
	api        *tgbotapi.BotAPI
	db         *database.DB
	onboarding *onboarding.Manager
	tracker    *tracker.Tracker
	weather    onboarding.WeatherProvider
	commands   map[string]commandFunc

	mu     sync.Mutex
	queues map[int64]chan tgbotapi.Update
}

// New создает нового бота
func New(token string, db *database.DB, onb *onboarding.Manager, trk *tracker.Tracker, wp onboarding.WeatherProvider) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания бота: %w", err)
	}

	log.Printf("Авторизован как @%s", api.Self.UserName)

	b := &Bot{
		api:        api,
		db:         db,
		onboarding: onb,
		tracker:    trk,
		weather:    wp,
		queues:     make(map[int64]chan tgbotapi.Update),
	}

	// Закрытый набор команд: имя → обработчик.
	b.commands = map[string]commandFunc{
		"start":          b.cmdStart,
		"help":           b.cmdHelp,
		"set_profile":    b.cmdSetProfile,
		"list_profile":   b.cmdListProfile,
		"calculate":      b.cmdCalculate,
		"temperature":    b.cmdTemperature,
		"log_water":      b.cmdLogWater,
		"log_food":       b.cmdLogFood,
		"log_workout":    b.cmdLogWorkout,
		"check_progress": b.cmdCheckProgress,
	}

	return b, nil
}

// Start запускает обработку обновлений
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-updates:
			b.dispatch(ctx, update)
		}
	}
}

// dispatch кладёт событие в персональную очередь пользователя.
// Очередь гарантирует, что события одного пользователя обрабатываются
// строго по порядку (чтение-изменение-запись профиля не гоняется само
// с собой), а разные пользователи не блокируют друг друга.
func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	userID := updateUserID(update)
	if userID == 0 {
		return
	}

	b.mu.Lock()
	q, ok := b.queues[userID]
	if !ok {
		q = make(chan tgbotapi.Update, queueSize)
		b.queues[userID] = q
		go b.worker(ctx, q)
	}
	b.mu.Unlock()

	select {
	case q <- update:
	default:
		log.Printf("Очередь пользователя %d переполнена, событие отброшено", userID)
	}
}

func (b *Bot) worker(ctx context.Context, q chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-q:
			b.handleUpdate(ctx, update)
		}
	}
}

func updateUserID(update tgbotapi.Update) int64 {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID
	case update.CallbackQuery != nil:
		return update.CallbackQuery.From.ID
	default:
		return 0
	}
}

// handleUpdate обрабатывает входящее обновление
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		b.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message != nil {
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает команды и текстовые ответы анкеты
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	if msg.IsCommand() {
		handler, ok := b.commands[msg.Command()]
		if !ok {
			b.send(chatID, answer{text: locales.Get().General.Unknown})
			return
		}
		b.send(chatID, handler(ctx, userID, msg.CommandArguments()))
		return
	}

	// Обычный текст во время анкеты — ответ на текущий шаг.
	if b.onboarding.Active(userID) {
		reply, err := b.onboarding.Input(ctx, userID, msg.Text)
		b.sendOnboarding(chatID, reply, err)
		return
	}

	b.send(chatID, answer{text: locales.Get().General.Unknown})
}

// handleCallback обрабатывает нажатия на inline-кнопки (выбор пола)
func (b *Bot) handleCallback(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	// Отвечаем на callback чтобы убрать "часики"
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		log.Printf("Не удалось ответить на callback: %v", err)
	}

	value, ok := strings.CutPrefix(callback.Data, "sex:")
	if !ok || callback.Message == nil {
		return
	}

	userID := callback.From.ID
	if !b.onboarding.Active(userID) {
		return
	}

	reply, err := b.onboarding.Input(ctx, userID, value)
	b.sendOnboarding(callback.Message.Chat.ID, reply, err)
}

func (b *Bot) cmdStart(ctx context.Context, userID int64, args string) answer {
	return answer{text: locales.Get().General.Start}
}

func (b *Bot) cmdHelp(ctx context.Context, userID int64, args string) answer {
	return answer{text: locales.Get().General.Help}
}

func (b *Bot) cmdSetProfile(ctx context.Context, userID int64, args string) answer {
	reply := b.onboarding.Begin(ctx, userID)
	return answer{text: reply.Text, sexKeyboard: reply.SexKeyboard}
}

func (b *Bot) cmdListProfile(ctx context.Context, userID int64, args string) answer {
	p, err := b.db.Profile(userID)
	if err != nil {
		return b.errorAnswer(err)
	}
	return answer{text: report.ProfileSummary(p)}
}

func (b *Bot) cmdCalculate(ctx context.Context, userID int64, args string) answer {
	p, err := b.db.Profile(userID)
	if err != nil {
		return b.errorAnswer(err)
	}
	text := fmt.Sprintf(locales.Get().Calculate,
		fitness.BasalEnergy(p.Sex, p.Weight, p.Height, p.Age, p.ActivityLevel),
		fitness.WaterIntake(p.Sex, p.Weight, p.ActivityLevel),
	)
	return answer{text: text}
}

func (b *Bot) cmdTemperature(ctx context.Context, userID int64, args string) answer {
	p, err := b.db.Profile(userID)
	if err != nil {
		return b.errorAnswer(err)
	}

	temp, err := b.weather.Temperature(ctx, p.City)
	if err != nil {
		return b.errorAnswer(err)
	}

	l := locales.Get().Temperature
	if temp >= weather.HotThreshold {
		return answer{text: fmt.Sprintf(l.Hot, p.City, temp)}
	}
	return answer{text: fmt.Sprintf(l.Normal, p.City, temp)}
}

func (b *Bot) cmdLogWater(ctx context.Context, userID int64, args string) answer {
	text, err := b.tracker.LogWater(ctx, userID, args)
	if err != nil {
		return b.errorAnswer(err)
	}
	return answer{text: text}
}

func (b *Bot) cmdLogFood(ctx context.Context, userID int64, args string) answer {
	text, err := b.tracker.LogFood(ctx, userID, args)
	if err != nil {
		return b.errorAnswer(err)
	}
	return answer{text: text}
}

func (b *Bot) cmdLogWorkout(ctx context.Context, userID int64, args string) answer {
	text, err := b.tracker.LogWorkout(ctx, userID, args)
	if err != nil {
		return b.errorAnswer(err)
	}
	return answer{text: text}
}

func (b *Bot) cmdCheckProgress(ctx context.Context, userID int64, args string) answer {
	text, err := b.tracker.Progress(userID)
	if err != nil {
		return b.errorAnswer(err)
	}
	return answer{text: text}
}

// errorAnswer переводит ошибку в ответ пользователю: текст валидации
// отправляется как есть, отсутствие профиля — отдельным сообщением,
// всё остальное логируется и превращается в «попробуйте позже».
func (b *Bot) errorAnswer(err error) answer {
	if msg, ok := apperr.Message(err); ok {
		return answer{text: msg}
	}
	if errors.Is(err, database.ErrProfileNotFound) {
		return answer{text: locales.Get().General.NoProfile}
	}
	log.Printf("Ошибка обработки команды: %v", err)
	return answer{text: locales.Get().General.RetryLater}
}

func (b *Bot) sendOnboarding(chatID int64, reply onboarding.Reply, err error) {
	if err != nil {
		b.send(chatID, b.errorAnswer(err))
		return
	}
	b.send(chatID, answer{text: reply.Text, sexKeyboard: reply.SexKeyboard})
}

func (b *Bot) send(chatID int64, a answer) {
	msg := tgbotapi.NewMessage(chatID, a.text)
	if a.sexKeyboard {
		l := locales.Get().Onboarding.Sex
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Male, "sex:male"),
				tgbotapi.NewInlineKeyboardButtonData(l.Female, "sex:female"),
			),
		)
	}

	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Не удалось отправить сообщение: %v", err)
	}
}
