package track

import (
	"fmt"
	"strings"

	"github.com/hazadus/feelmusic/internal/data"
)

// Tab определяет активную вкладку списка
type Tab int

// Вкладки списка песен
const (
	// ForYou показывает весь каталог
	ForYou Tab = iota
	// TopTracks показывает только песни с флагом top_track
	TopTracks
)

// Tabs возвращает вкладки в порядке отображения
func Tabs() []Tab {
	return []Tab{ForYou, TopTracks}
}

func (t Tab) String() string {
	switch t {
	case ForYou:
		return "For You"
	case TopTracks:
		return "Top Tracks"
	default:
		return "Unknown"
	}
}

// ParseTab разбирает название вкладки из командной строки
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "for-you", "foryou", "for you", "all":
		return ForYou, nil
	case "top", "top-tracks", "toptracks", "top tracks":
		return TopTracks, nil
	default:
		return ForYou, fmt.Errorf("неизвестная вкладка: %s", s)
	}
}

// Next возвращает следующую вкладку по кругу
func (t Tab) Next() Tab {
	tabs := Tabs()
	for i, tab := range tabs {
		if tab == t {
			return tabs[(i+1)%len(tabs)]
		}
	}
	return ForYou
}

// Filter возвращает песни, подходящие под строку поиска и вкладку.
// Порядок каталога сохраняется, исходный срез не изменяется.
func Filter(songs []data.Song, search string, tab Tab) []data.Song {
	term := strings.ToLower(search)
	filtered := make([]data.Song, 0, len(songs))
	for _, s := range songs {
		matches := strings.Contains(strings.ToLower(s.Name), term) ||
			strings.Contains(strings.ToLower(s.Artist), term)
		if !matches {
			continue
		}
		if tab == ForYou || (tab == TopTracks && s.TopTrack) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// indexOf ищет песню по ID, -1 если ее нет в списке
func indexOf(songs []data.Song, current *data.Song) int {
	if current == nil {
		return -1
	}
	for i := range songs {
		if songs[i].ID == current.ID {
			return i
		}
	}
	return -1
}

// Next возвращает песню после current с переходом по кругу.
// Если current нет в списке, возвращается первая песня.
// Для пустого списка ok == false.
func Next(songs []data.Song, current *data.Song) (data.Song, bool) {
	if len(songs) == 0 {
		return data.Song{}, false
	}
	i := indexOf(songs, current)
	if i < 0 {
		return songs[0], true
	}
	return songs[(i+1)%len(songs)], true
}

// Previous возвращает песню перед current с переходом по кругу.
// Если current нет в списке, возвращается последняя песня.
// Для пустого списка ok == false.
func Previous(songs []data.Song, current *data.Song) (data.Song, bool) {
	if len(songs) == 0 {
		return data.Song{}, false
	}
	i := indexOf(songs, current)
	if i < 0 {
		return songs[len(songs)-1], true
	}
	return songs[(i-1+len(songs))%len(songs)], true
}
