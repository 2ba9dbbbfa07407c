// Package exercise предоставляет клиент API Ninjas /caloriesburned.
package exercise

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.api-ninjas.com"

// Client — клиент API Ninjas. BaseURL и HTTPClient можно переопределить в тестах.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

// CaloriesBurned возвращает калории, сожжённые за тренировку.
// Вес передаётся в фунтах — этого требует API.
func (c *Client) CaloriesBurned(ctx context.Context, activity string, weightLbs float64, minutes int) (int, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("activity", activity)
	params.Set("weight", fmt.Sprintf("%.2f", weightLbs))
	params.Set("duration", strconv.Itoa(minutes))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/v1/caloriesburned?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("apininjas: создание запроса: %w", err)
	}
	req.Header.Set("X-Api-Key", c.APIKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("apininjas: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("apininjas: статус %d: %s", resp.StatusCode, body)
	}

	var payload []struct {
		TotalCalories float64 `json:"total_calories"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("apininjas: неверный JSON: %w", err)
	}
	if len(payload) == 0 {
		return 0, fmt.Errorf("apininjas: тренировка %q не найдена", activity)
	}
	return int(payload[0].TotalCalories), nil
}
