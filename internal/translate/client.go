// Package translate предоставляет клиент MyMemory для перевода
// запросов пользователя на английский — язык провайдеров еды и тренировок.
package translate

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

const defaultBaseURL = "https://api.mymemory.translated.net"

// Client — клиент MyMemory. BaseURL и HTTPClient можно переопределить в тестах.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient() *Client {
	return &Client{}
}

// Translate переводит текст с русского на английский.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", "ru|en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/get?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("mymemory: создание запроса: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("mymemory: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mymemory: статус %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("mymemory: неверный JSON: %w", err)
	}
	if payload.ResponseData.TranslatedText == "" {
		return "", fmt.Errorf("mymemory: пустой перевод")
	}
	return payload.ResponseData.TranslatedText, nil
}
