package exercise_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/113578/getfitwithbot/internal/exercise"
)

func TestCaloriesBurned(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Api-Key") != "test-key" {
			t.Error("отсутствует заголовок X-Api-Key")
		}
		q := r.URL.Query()
		if q.Get("activity") != "running" {
			t.Errorf("activity = %q, ожидалось running", q.Get("activity"))
		}
		if q.Get("weight") != "154.32" {
			t.Errorf("weight = %q, ожидалось 154.32", q.Get("weight"))
		}
		if q.Get("duration") != "30" {
			t.Errorf("duration = %q, ожидалось 30", q.Get("duration"))
		}
		fmt.Fprint(w, `[{"name":"running","total_calories":300.7}]`)
	}))
	defer srv.Close()

	c := exercise.NewClient("test-key")
	c.BaseURL = srv.URL

	burned, err := c.CaloriesBurned(context.Background(), "running", 154.32, 30)
	if err != nil {
		t.Fatalf("CaloriesBurned: %v", err)
	}
	if burned != 300 {
		t.Fatalf("burned = %d, ожидалось 300", burned)
	}
}

func TestCaloriesBurnedUnknownActivity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	}))
	defer srv.Close()

	c := exercise.NewClient("test-key")
	c.BaseURL = srv.URL

	if _, err := c.CaloriesBurned(context.Background(), "левитация", 154.32, 30); err == nil {
		t.Fatal("ожидалась ошибка на неизвестную тренировку")
	}
}
