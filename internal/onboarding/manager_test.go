package onboarding_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/113578/getfitwithbot/internal/onboarding"
	"github.com/113578/getfitwithbot/pkg/models"
)

type fakeStore struct {
	saved []*models.Profile
	fail  bool
}

func (s *fakeStore) SaveProfile(p *models.Profile) error {
	if s.fail {
		return errors.New("диск недоступен")
	}
	cp := *p
	s.saved = append(s.saved, &cp)
	return nil
}

type fakeWeather struct {
	temp float64
	err  error
}

func (w *fakeWeather) Temperature(ctx context.Context, city string) (float64, error) {
	return w.temp, w.err
}

// fill проводит анкету от пола до цели по воде включительно.
func fill(t *testing.T, m *onboarding.Manager, userID int64, inputs []string) onboarding.Reply {
	t.Helper()
	ctx := context.Background()

	var reply onboarding.Reply
	for _, input := range inputs {
		var err error
		reply, err = m.Input(ctx, userID, input)
		if err != nil {
			t.Fatalf("ввод %q: %v", input, err)
		}
	}
	return reply
}

var happyInputs = []string{"male", "70", "175", "30", "3", "Москва", "2500", "2000"}

func TestOnboardingHappyPath(t *testing.T) {
	store := &fakeStore{}
	m := onboarding.NewManager(store, &fakeWeather{temp: 30})
	ctx := context.Background()

	reply := m.Begin(ctx, 42)
	if !reply.SexKeyboard {
		t.Fatal("первый шаг должен предлагать клавиатуру выбора пола")
	}
	if !m.Active(42) {
		t.Fatal("после /set_profile анкета должна быть активна")
	}

	final := fill(t, m, 42, happyInputs)
	if !strings.Contains(final.Text, "Ваш профиль") {
		t.Fatalf("завершение анкеты должно отвечать сводкой профиля, получено: %q", final.Text)
	}
	if m.Active(42) {
		t.Fatal("после завершения анкеты сессия должна быть удалена")
	}

	if len(store.saved) != 1 {
		t.Fatalf("ожидался ровно один сохранённый профиль, получено %d", len(store.saved))
	}
	got := store.saved[0]
	want := &models.Profile{
		UserID: 42, Sex: models.SexMale, Weight: 70, Height: 175, Age: 30,
		ActivityLevel: 3, City: "Москва", CalorieGoal: 2500, WaterGoal: 2000,
	}
	if *got != *want {
		t.Fatalf("сохранённый профиль %+v, ожидался %+v", got, want)
	}
}

func TestOnboardingPromptHints(t *testing.T) {
	store := &fakeStore{}
	m := onboarding.NewManager(store, &fakeWeather{temp: 30})
	ctx := context.Background()
	m.Begin(ctx, 7)

	// После города — подсказка с нормой калорий (2308 для этих данных).
	calorieReply := fill(t, m, 7, []string{"male", "70", "175", "30", "3", "Москва"})
	if !strings.Contains(calorieReply.Text, "2308") {
		t.Fatalf("приглашение цели по калориям должно содержать норму 2308, получено: %q", calorieReply.Text)
	}

	// После цели по калориям — норма воды и погодная подсказка.
	waterReply := fill(t, m, 7, []string{"2500"})
	if !strings.Contains(waterReply.Text, "3430") {
		t.Fatalf("приглашение цели по воде должно содержать норму 3430, получено: %q", waterReply.Text)
	}
	if !strings.Contains(waterReply.Text, "жарко") {
		t.Fatalf("при 30°C ожидалась погодная подсказка, получено: %q", waterReply.Text)
	}
}

func TestOnboardingWeatherFailureIsAdvisory(t *testing.T) {
	store := &fakeStore{}
	m := onboarding.NewManager(store, &fakeWeather{err: errors.New("сервис недоступен")})
	m.Begin(context.Background(), 7)

	waterReply := fill(t, m, 7, []string{"male", "70", "175", "30", "3", "Москва", "2500"})
	if !strings.Contains(waterReply.Text, "Рекомендуемая норма") {
		t.Fatalf("норма воды должна остаться в приглашении, получено: %q", waterReply.Text)
	}
	if strings.Contains(waterReply.Text, "жарко") {
		t.Fatalf("при ошибке погоды подсказки быть не должно, получено: %q", waterReply.Text)
	}

	final := fill(t, m, 7, []string{"2000"})
	if !strings.Contains(final.Text, "Ваш профиль") {
		t.Fatal("ошибка погодного сервиса не должна мешать завершению анкеты")
	}
}

func TestOnboardingValidationKeepsStep(t *testing.T) {
	store := &fakeStore{}
	m := onboarding.NewManager(store, &fakeWeather{})
	ctx := context.Background()
	m.Begin(ctx, 99)
	fill(t, m, 99, []string{"male"})

	// Три уровня валидации веса плюс проверка типа.
	tests := []struct {
		input string
		want  string
	}{
		{"abc", "числовым"},
		{"-5", "отрицательным"},
		{"0", "отрицательным"},
		{"5", "Слишком низкий"},
		{"300", "Слишком тяжёлый"},
	}
	for _, tc := range tests {
		reply, err := m.Input(ctx, 99, tc.input)
		if err != nil {
			t.Fatalf("ввод %q: %v", tc.input, err)
		}
		if !strings.Contains(reply.Text, tc.want) {
			t.Fatalf("на ввод %q ожидалось сообщение с %q, получено: %q", tc.input, tc.want, reply.Text)
		}
		if len(store.saved) != 0 {
			t.Fatal("при ошибке валидации ничего не должно сохраняться")
		}
	}

	// Шаг не сдвинулся: корректный вес принимается, анкета продолжается.
	reply := fill(t, m, 99, []string{"70"})
	if !strings.Contains(reply.Text, "рост") {
		t.Fatalf("после веса ожидалось приглашение роста, получено: %q", reply.Text)
	}
}

func TestOnboardingSexRequiresButtons(t *testing.T) {
	m := onboarding.NewManager(&fakeStore{}, &fakeWeather{})
	ctx := context.Background()
	m.Begin(ctx, 5)

	reply, err := m.Input(ctx, 5, "мужчина")
	if err != nil {
		t.Fatalf("ввод текста на шаге пола: %v", err)
	}
	if !strings.Contains(reply.Text, "кнопкой") {
		t.Fatalf("текст вместо кнопки должен просить выбрать кнопкой, получено: %q", reply.Text)
	}
	if !reply.SexKeyboard {
		t.Fatal("клавиатура выбора пола должна быть показана повторно")
	}
}

func TestOnboardingRestartDiscardsSession(t *testing.T) {
	m := onboarding.NewManager(&fakeStore{}, &fakeWeather{})
	ctx := context.Background()

	m.Begin(ctx, 11)
	fill(t, m, 11, []string{"male", "70", "175"})

	// Повторный /set_profile начинает анкету заново.
	reply := m.Begin(ctx, 11)
	if !reply.SexKeyboard {
		t.Fatal("после перезапуска анкета должна начинаться с выбора пола")
	}
}

func TestOnboardingSaveFailureKeepsSession(t *testing.T) {
	store := &fakeStore{fail: true}
	m := onboarding.NewManager(store, &fakeWeather{})
	ctx := context.Background()
	m.Begin(ctx, 13)
	fill(t, m, 13, happyInputs[:len(happyInputs)-1])

	if _, err := m.Input(ctx, 13, "2000"); err == nil {
		t.Fatal("ошибка сохранения должна подниматься наверх")
	}
	if !m.Active(13) {
		t.Fatal("после неудачного сохранения сессия должна остаться")
	}

	// Хранилище ожило — повторный ввод цели завершает анкету.
	store.fail = false
	final := fill(t, m, 13, []string{"2000"})
	if !strings.Contains(final.Text, "Ваш профиль") {
		t.Fatalf("повтор после восстановления хранилища должен завершить анкету, получено: %q", final.Text)
	}
	if len(store.saved) != 1 {
		t.Fatalf("ожидался один сохранённый профиль, получено %d", len(store.saved))
	}
}

func TestOnboardingNoSession(t *testing.T) {
	m := onboarding.NewManager(&fakeStore{}, &fakeWeather{})
	if _, err := m.Input(context.Background(), 1, "70"); !errors.Is(err, onboarding.ErrNoSession) {
		t.Fatalf("ожидался ErrNoSession, получено: %v", err)
	}
}
