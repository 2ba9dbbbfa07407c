// Package onboarding реализует анкету профиля: строго упорядоченный
// конечный автомат, который собирает поля по одному, валидирует каждое
// и в конце сохраняет готовый профиль. Незавершённые ответы живут только
// в памяти — в хранилище попадает либо полный профиль, либо ничего.
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/113578/getfitwithbot/internal/report"
	"github.com/113578/getfitwithbot/pkg/locales"
	"github.com/113578/getfitwithbot/pkg/models"
)

// ErrNoSession возвращается, если пользователь не заполняет анкету.
var ErrNoSession = errors.New("анкета не начата")

// ProfileStore — хранилище готовых профилей (реализуется internal/database).
type ProfileStore interface {
	SaveProfile(p *models.Profile) error
}

// WeatherProvider — источник температуры для подсказок анкеты.
type WeatherProvider interface {
	Temperature(ctx context.Context, city string) (float64, error)
}

// Session — незавершённые ответы анкеты одного пользователя.
// Поля сессии не защищены мьютексом: события одного пользователя
// сериализует транспорт, менеджер охраняет только карту сессий.
type Session struct {
	UserID        int64
	step          int
	Sex           string
	Weight        int
	Height        int
	Age           int
	ActivityLevel int
	City          string
	CalorieGoal   int
	WaterGoal     int
}

// profile собирает готовый профиль; счётчики начинаются с нуля.
func (s *Session) profile() *models.Profile {
	return &models.Profile{
		UserID:        s.UserID,
		Sex:           s.Sex,
		Weight:        s.Weight,
		Height:        s.Height,
		Age:           s.Age,
		ActivityLevel: s.ActivityLevel,
		City:          s.City,
		CalorieGoal:   s.CalorieGoal,
		WaterGoal:     s.WaterGoal,
	}
}

// Reply — ответ анкеты: текст и признак клавиатуры выбора пола.
type Reply struct {
	Text        string
	SexKeyboard bool
}

// Manager ведёт сессии анкеты всех пользователей.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	steps    []step
	store    ProfileStore
	weather  WeatherProvider
}

func NewManager(store ProfileStore, weather WeatherProvider) *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
		steps:    newSteps(),
		store:    store,
		weather:  weather,
	}
}

// Begin начинает новую анкету, отбрасывая незавершённую, если она была.
func (m *Manager) Begin(ctx context.Context, userID int64) Reply {
	s := &Session{UserID: userID}

	m.mu.Lock()
	m.sessions[userID] = s
	m.mu.Unlock()

	return m.promptFor(ctx, s)
}

// Active сообщает, заполняет ли пользователь анкету прямо сейчас.
func (m *Manager) Active(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sessions[userID]
	return ok
}

// Input обрабатывает ответ на текущий шаг анкеты. При ошибке валидации
// сессия остаётся на том же шаге и уже собранные поля сохраняются.
// После последнего шага профиль сохраняется, ответом служит его сводка,
// а сессия удаляется.
func (m *Manager) Input(ctx context.Context, userID int64, text string) (Reply, error) {
	m.mu.Lock()
	s, ok := m.sessions[userID]
	m.mu.Unlock()
	if !ok {
		return Reply{}, ErrNoSession
	}

	current := m.steps[s.step]
	if err := current.apply(s, text); err != nil {
		return Reply{
			Text:        err.Error() + locales.Get().General.TryAgainSuffix,
			SexKeyboard: current.sexKeyboard,
		}, nil
	}

	s.step++
	if s.step < len(m.steps) {
		return m.promptFor(ctx, s), nil
	}

	// Все поля собраны — сохраняем профиль целиком.
	p := s.profile()
	if err := m.store.SaveProfile(p); err != nil {
		// Остаёмся на последнем шаге: повторный ввод цели по воде
		// повторит попытку сохранения.
		s.step--
		return Reply{}, fmt.Errorf("сохранение профиля: %w", err)
	}

	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()

	return Reply{Text: report.ProfileSummary(p)}, nil
}

func (m *Manager) promptFor(ctx context.Context, s *Session) Reply {
	current := m.steps[s.step]
	return Reply{
		Text:        current.prompt(ctx, m, s),
		SexKeyboard: current.sexKeyboard,
	}
}
