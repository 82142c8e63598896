package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/track"
)

const scenarioResponse = `{"data":[
	{"id":1,"name":"A","artist":"X","accent":"#111111","top_track":true},
	{"id":2,"name":"B","artist":"Y","accent":"#222222","top_track":false}
]}`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/songs" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := newServer(t, http.StatusOK, scenarioResponse)

	result := NewClient(server.URL, server.Client()).Fetch(context.Background())
	if result.Err != nil {
		t.Fatalf("Неожиданная ошибка: %v", result.Err)
	}
	if len(result.Songs) != 2 {
		t.Fatalf("Ожидалось 2 песни, получено %d", len(result.Songs))
	}

	first := result.Songs[0]
	if first.ID != 1 || first.Name != "A" || first.Artist != "X" || !first.TopTrack || first.Accent != "#111111" {
		t.Errorf("Неверно разобрана песня: %+v", first)
	}
	if result.Songs[1].TopTrack {
		t.Error("У второй песни top_track должен быть false")
	}
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"server error", http.StatusInternalServerError, "boom", ErrUnexpectedStatus},
		{"not found", http.StatusNotFound, "", ErrUnexpectedStatus},
		{"invalid json", http.StatusOK, "{not json", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := newServer(t, test.status, test.body)
			result := NewClient(server.URL, server.Client()).Fetch(context.Background())
			if result.Err == nil {
				t.Fatal("Ожидалась ошибка")
			}
			if test.target != nil && !errors.Is(result.Err, test.target) {
				t.Errorf("Ожидалась ошибка %v, получено %v", test.target, result.Err)
			}
		})
	}
}

func TestFetchNoBaseURL(t *testing.T) {
	result := NewClient("", nil).Fetch(context.Background())
	if !errors.Is(result.Err, ErrNoBaseURL) {
		t.Errorf("Ожидалась ErrNoBaseURL, получено %v", result.Err)
	}
}

func TestLoadFromServer(t *testing.T) {
	server := newServer(t, http.StatusOK, scenarioResponse)
	client := NewClient(server.URL, server.Client())

	catalog := Load(context.Background(), client, client.BaseURL())
	if catalog.IsMockData {
		t.Error("Каталог с сервера не должен быть помечен как тестовый")
	}
	if !strings.HasPrefix(catalog.SongURL(1), server.URL+"/song/") {
		t.Errorf("Неожиданный адрес песни: %s", catalog.SongURL(1))
	}

	filtered := track.Filter(catalog.Songs, "", track.TopTracks)
	if len(filtered) != 1 || filtered[0].ID != 1 {
		t.Errorf("Во вкладке Top Tracks ожидалась только песня 1, получено %+v", filtered)
	}
}

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context) Result {
	return Result{Err: errors.New("connection refused")}
}

func TestLoadFallback(t *testing.T) {
	catalog := Load(context.Background(), failingFetcher{}, "http://localhost:5000")

	if !catalog.IsMockData {
		t.Error("Ожидался флаг тестовых данных")
	}

	mock := data.MockSongs()
	if len(catalog.Songs) != len(mock) {
		t.Fatalf("Ожидалось %d песен тестового набора, получено %d", len(mock), len(catalog.Songs))
	}
	for i := range mock {
		if catalog.Songs[i] != mock[i] {
			t.Errorf("Песня %d отличается от тестового набора", i)
		}
	}

	id := catalog.Songs[0].ID
	if !strings.HasPrefix(catalog.SongURL(id), "/mock_data/songs/") {
		t.Errorf("Ожидался локальный адрес песни, получено %s", catalog.SongURL(id))
	}
	if !strings.HasPrefix(catalog.CoverURL(id), "/mock_data/covers/") {
		t.Errorf("Ожидался локальный адрес обложки, получено %s", catalog.CoverURL(id))
	}
}

func TestLoadFallbackOnServerError(t *testing.T) {
	server := newServer(t, http.StatusBadGateway, "")
	client := NewClient(server.URL, server.Client())

	catalog := Load(context.Background(), client, client.BaseURL())
	if !catalog.IsMockData {
		t.Error("При ошибке сервера ожидался тестовый набор")
	}
}
