// Package weather предоставляет клиент OpenWeatherMap.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.openweathermap.org"

// HotThreshold — температура (°C), начиная с которой бот советует пить больше воды.
const HotThreshold = 25.0

// Client — клиент погодного API. BaseURL и HTTPClient можно переопределить в тестах.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

// Temperature возвращает текущую температуру в городе в градусах Цельсия.
func (c *Client) Temperature(ctx context.Context, city string) (float64, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", c.APIKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("openweathermap: создание запроса: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("openweathermap: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("openweathermap: статус %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("openweathermap: неверный JSON: %w", err)
	}
	return payload.Main.Temp, nil
}
