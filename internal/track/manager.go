// Package track содержит фильтрацию каталога и навигацию по списку песен
package track

import (
	"github.com/hazadus/feelmusic/internal/data"
)

// Manager хранит параметры фильтрации и отфильтрованный список.
// Список пересчитывается при каждом изменении строки поиска или вкладки.
type Manager struct {
	catalog  *data.Catalog
	search   string
	tab      Tab
	filtered []data.Song
}

// NewManager создает новый экземпляр Manager
func NewManager(catalog *data.Catalog) *Manager {
	m := &Manager{
		catalog: catalog,
		tab:     ForYou,
	}
	m.refresh()
	return m
}

// ListTracks возвращает отфильтрованный список песен
func (m *Manager) ListTracks() []data.Song {
	return m.filtered
}

// Search возвращает текущую строку поиска
func (m *Manager) Search() string {
	return m.search
}

// Tab возвращает активную вкладку
func (m *Manager) Tab() Tab {
	return m.tab
}

// SetSearch меняет строку поиска
func (m *Manager) SetSearch(search string) {
	if search == m.search {
		return
	}
	m.search = search
	m.refresh()
}

// SetTab меняет активную вкладку
func (m *Manager) SetTab(tab Tab) {
	if tab == m.tab {
		return
	}
	m.tab = tab
	m.refresh()
}

// Next возвращает следующую песню отфильтрованного списка
func (m *Manager) Next(current *data.Song) (data.Song, bool) {
	return Next(m.filtered, current)
}

// Previous возвращает предыдущую песню отфильтрованного списка
func (m *Manager) Previous(current *data.Song) (data.Song, bool) {
	return Previous(m.filtered, current)
}

func (m *Manager) refresh() {
	m.filtered = Filter(m.catalog.Songs, m.search, m.tab)
}
