// Package data содержит модель каталога песен
package data

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Song описывает одну песню каталога. После загрузки не изменяется.
type Song struct {
	ID       int    `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Artist   string `json:"artist" yaml:"artist"`
	Accent   string `json:"accent" yaml:"accent"`       // Цвет для оформления, например "#331E00"
	TopTrack bool   `json:"top_track" yaml:"top_track"` // Входит ли песня в "Top Tracks"
}

// Catalog хранит упорядоченный список песен и источник, из которого он получен
type Catalog struct {
	Songs      []Song
	IsMockData bool
	BaseURL    string // Адрес сервера, используется только для сетевых данных
}

// Пути к локальным файлам тестового набора
const (
	mockSongPathFormat  = "/mock_data/songs/%d.mp3"
	mockCoverPathFormat = "/mock_data/covers/%d.jpg"
)

// SongURL возвращает адрес аудио для песни с указанным ID
func (c *Catalog) SongURL(id int) string {
	if c.IsMockData {
		return fmt.Sprintf(mockSongPathFormat, id)
	}
	return fmt.Sprintf("%s/song/%d", strings.TrimSuffix(c.BaseURL, "/"), id)
}

// CoverURL возвращает адрес обложки для песни с указанным ID
func (c *Catalog) CoverURL(id int) string {
	if c.IsMockData {
		return fmt.Sprintf(mockCoverPathFormat, id)
	}
	return fmt.Sprintf("%s/cover/%d", strings.TrimSuffix(c.BaseURL, "/"), id)
}

// SongByID возвращает указатель на песню каталога по ID
func (c *Catalog) SongByID(id int) (*Song, error) {
	for i := range c.Songs {
		if c.Songs[i].ID == id {
			return &c.Songs[i], nil
		}
	}
	return nil, fmt.Errorf("песни с ID %d не найдено", id)
}

//go:embed mock_songs.yaml
var mockSongsYAML []byte

type mockData struct {
	Songs []Song `yaml:"songs"`
}

// MockSongs возвращает фиксированный тестовый набор песен.
// Каждый вызов возвращает новый срез.
func MockSongs() []Song {
	var d mockData
	if err := yaml.Unmarshal(mockSongsYAML, &d); err != nil {
		panic(fmt.Sprintf("ошибка разбора встроенного набора песен: %v", err))
	}
	return d.Songs
}

// NewMockCatalog создает каталог из тестового набора
func NewMockCatalog() *Catalog {
	return &Catalog{
		Songs:      MockSongs(),
		IsMockData: true,
	}
}
