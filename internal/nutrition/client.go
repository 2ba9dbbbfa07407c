// Package nutrition предоставляет клиент Nutritionix: калорийность еды,
// описанной свободным текстом.
package nutrition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://trackapi.nutritionix.com"

// Client — клиент Nutritionix. BaseURL и HTTPClient можно переопределить в тестах.
type Client struct {
	AppID      string
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(appID, apiKey string) *Client {
	return &Client{AppID: appID, APIKey: apiKey}
}

// Calories возвращает калорийность первого распознанного продукта в запросе.
func (c *Client) Calories(ctx context.Context, query string) (int, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	reqBody, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return 0, fmt.Errorf("nutritionix: сериализация запроса: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v2/natural/nutrients", bytes.NewReader(reqBody))
	if err != nil {
		return 0, fmt.Errorf("nutritionix: создание запроса: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-app-id", c.AppID)
	req.Header.Set("x-app-key", c.APIKey)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("nutritionix: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("nutritionix: статус %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Foods []struct {
			NfCalories float64 `json:"nf_calories"`
		} `json:"foods"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("nutritionix: неверный JSON: %w", err)
	}
	if len(payload.Foods) == 0 {
		return 0, fmt.Errorf("nutritionix: еда по запросу %q не найдена", query)
	}
	return int(payload.Foods[0].NfCalories), nil
}
