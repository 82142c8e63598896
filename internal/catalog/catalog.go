// Package catalog загружает каталог песен с сервера с переходом на тестовый набор
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/hazadus/feelmusic/internal/data"
)

var (
	// ErrNoBaseURL возвращается, если адрес сервера не задан
	ErrNoBaseURL = errors.New("адрес сервера не задан")
	// ErrUnexpectedStatus возвращается для ответов с кодом не 2xx
	ErrUnexpectedStatus = errors.New("неожиданный статус ответа")
)

// Result содержит либо песни, либо ошибку загрузки
type Result struct {
	Songs []data.Song
	Err   error
}

// Fetcher получает каталог из источника
type Fetcher interface {
	Fetch(ctx context.Context) Result
}

type songsResponse struct {
	Data []data.Song `json:"data"`
}

// Client получает каталог с сервера по адресу {baseURL}/songs
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient создает новый клиент каталога
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch запрашивает каталог. Ошибки не выходят за пределы Result.
func (c *Client) Fetch(ctx context.Context) Result {
	if c.baseURL == "" {
		return Result{Err: ErrNoBaseURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/songs", nil)
	if err != nil {
		return Result{Err: fmt.Errorf("ошибка создания запроса: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Err: fmt.Errorf("ошибка выполнения запроса: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Err: fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)}
	}

	var body songsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{Err: fmt.Errorf("ошибка разбора ответа: %w", err)}
	}

	return Result{Songs: body.Data}
}

// Load получает каталог и при любой ошибке подставляет тестовый набор
func Load(ctx context.Context, fetcher Fetcher, baseURL string) *data.Catalog {
	result := fetcher.Fetch(ctx)
	if result.Err != nil {
		log.Printf("Ошибка загрузки каталога: %v", result.Err)
		log.Printf("Используется тестовый набор песен")
		return data.NewMockCatalog()
	}

	log.Printf("Каталог загружен с сервера %s: %d песен", baseURL, len(result.Songs))
	return &data.Catalog{
		Songs:   result.Songs,
		BaseURL: baseURL,
	}
}
