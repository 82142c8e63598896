// Package tracklist содержит поиск, вкладки и список песен для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/musicplayer"
	"github.com/hazadus/feelmusic/internal/track"
	"github.com/hazadus/feelmusic/internal/utils"
)

const (
	artistWidth = 20
	nameWidth   = 30
)

var (
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	currentItemStyle  = lipgloss.NewStyle().Bold(true)
	activeTabStyle    = lipgloss.NewStyle().Bold(true).Underline(true).Padding(0, 2)
	tabStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).Padding(0, 2)
	searchStyle       = lipgloss.NewStyle().MarginLeft(2).MarginBottom(1)
	emptyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginLeft(4)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

// songItem реализует интерфейс list.Item для песни
type songItem struct {
	song data.Song
}

func (i songItem) FilterValue() string {
	return i.song.Name + " " + i.song.Artist
}

// songItemDelegate отображает элементы списка и выделяет текущую песню
type songItemDelegate struct {
	controller *musicplayer.Controller
}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	marker := " "
	if current := d.controller.Session().Current(); current != nil && current.ID == i.song.ID {
		marker = "♪"
		if d.controller.Session().Playing() {
			marker = "▶"
		}
	}

	str := fmt.Sprintf("%s %-4d %s %s",
		marker,
		i.song.ID,
		utils.PadRight(i.song.Artist, artistWidth),
		utils.TruncateString(i.song.Name, nameWidth))
	if marker != " " {
		str = currentItemStyle.Render(str)
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет поиск, вкладки и список песен
type Model struct {
	controller *musicplayer.Controller
	search     textinput.Model
	list       list.Model
}

// NewModel создает новую модель списка песен
func NewModel(controller *musicplayer.Controller) *Model {
	search := textinput.New()
	search.Prompt = "🔍 "
	search.Placeholder = "Search Song, Artist"
	search.SetValue(controller.Search())

	l := list.New(nil, songItemDelegate{controller: controller}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.PaginationStyle = paginationStyle
	// Выходом и справкой управляет главная модель
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	m := &Model{
		controller: controller,
		search:     search,
		list:       l,
	}
	m.Refresh()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// SearchFocused сообщает, находится ли фокус в поле поиска
func (m *Model) SearchFocused() bool {
	return m.search.Focused()
}

// FocusSearch переводит фокус в поле поиска
func (m *Model) FocusSearch() tea.Cmd {
	return m.search.Focus()
}

// BlurSearch убирает фокус из поля поиска
func (m *Model) BlurSearch() {
	m.search.Blur()
}

// NextTab переключает вкладку
func (m *Model) NextTab() {
	m.controller.SetTab(m.controller.Tab().Next())
	m.Refresh()
}

// SelectedSong возвращает песню под курсором
func (m *Model) SelectedSong() (data.Song, bool) {
	item, ok := m.list.SelectedItem().(songItem)
	if !ok {
		return data.Song{}, false
	}
	return item.song, true
}

// Refresh заново заполняет список из отфильтрованных песен
func (m *Model) Refresh() {
	songs := m.controller.Songs()

	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}
	m.list.SetItems(items)

	// Курсор на текущей песне, если она есть в списке
	if current := m.controller.Session().Current(); current != nil {
		for i, s := range songs {
			if s.ID == current.ID {
				m.list.Select(i)
				return
			}
		}
	}
	m.list.ResetSelected()
}

// SetSize задает размеры списка
func (m *Model) SetSize(width, height int) {
	m.search.Width = max(10, width-8)
	// Две строки под вкладки и поиск
	m.list.SetSize(width, max(1, height-4))
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != m.controller.Search() {
			m.controller.SetSearch(m.search.Value())
			m.Refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n")
	b.WriteString(searchStyle.Render(m.search.View()))
	b.WriteString("\n")

	if len(m.list.Items()) == 0 {
		b.WriteString(emptyStyle.Render("Ничего не найдено"))
		return b.String()
	}
	b.WriteString(m.list.View())
	return b.String()
}

func (m *Model) tabsView() string {
	tabs := track.Tabs()
	rendered := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab == m.controller.Tab() {
			rendered[i] = activeTabStyle.Render(tab.String())
		} else {
			rendered[i] = tabStyle.Render(tab.String())
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
