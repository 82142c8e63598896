// Package app содержит основную логику TUI приложения
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/musicplayer"
	"github.com/hazadus/feelmusic/internal/session"
	tuiPlayer "github.com/hazadus/feelmusic/internal/tui/player"
	"github.com/hazadus/feelmusic/internal/tui/tracklist"
)

const maxPlayerWidth = 48

var (
	helpStyle     = lipgloss.NewStyle().PaddingLeft(2)
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

// Audio аудио примитив, которым управляет приложение
type Audio interface {
	session.Audio
	tuiPlayer.EventSource
	Close() error
}

// MainModel представляет главную модель TUI
type MainModel struct {
	controller     *musicplayer.Controller
	audio          Audio
	seekStep       time.Duration
	keys           keyMap
	help           help.Model
	tracklistModel *tracklist.Model
	playerModel    *tuiPlayer.Model
	width          int
	quitting       bool
}

// NewMainModel создает новую главную модель
func NewMainModel(catalog *data.Catalog, audio Audio, covers tuiPlayer.CoverLoader, seekStep time.Duration) *MainModel {
	controller := musicplayer.New(catalog, session.New(audio))

	return &MainModel{
		controller:     controller,
		audio:          audio,
		seekStep:       seekStep,
		keys:           newKeyMap(),
		help:           help.New(),
		tracklistModel: tracklist.NewModel(controller),
		playerModel:    tuiPlayer.NewModel(controller, audio, covers),
	}
}

// Controller возвращает контроллер плеера
func (m *MainModel) Controller() *musicplayer.Controller {
	return m.controller
}

// Init инициализирует модель и подписывается на события аудио
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.tracklistModel.Init(),
		m.playerModel.Init(),
	)
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.playerModel, cmd = m.playerModel.Update(msg)
	cmds = append(cmds, cmd)
	m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *MainModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return tea.Quit
	}

	// В поле поиска клавиши вводят текст, пробел не переключает воспроизведение
	if m.tracklistModel.SearchFocused() {
		if key.Matches(msg, m.keys.LeaveSearch) {
			m.tracklistModel.BlurSearch()
			return nil
		}
		var cmd tea.Cmd
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keys.TogglePlay):
		m.controller.TogglePlay()

	case key.Matches(msg, m.keys.Next):
		m.controller.Next()
		m.tracklistModel.Refresh()

	case key.Matches(msg, m.keys.Previous):
		m.controller.Previous()
		m.tracklistModel.Refresh()

	case key.Matches(msg, m.keys.SeekForward):
		m.controller.SeekBy(m.seekStep)

	case key.Matches(msg, m.keys.SeekBack):
		m.controller.SeekBy(-m.seekStep)

	case key.Matches(msg, m.keys.Mute):
		m.controller.ToggleMute()

	case key.Matches(msg, m.keys.Select):
		if song, ok := m.tracklistModel.SelectedSong(); ok {
			m.controller.Select(song.ID)
		}

	case key.Matches(msg, m.keys.SwitchTab):
		m.tracklistModel.NextTab()

	case key.Matches(msg, m.keys.Search):
		return m.tracklistModel.FocusSearch()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		var cmd tea.Cmd
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
		return cmd
	}

	return m.playerModel.SyncCover()
}

func (m *MainModel) resize(width, height int) {
	m.width = width
	m.help.Width = width

	playerWidth := min(maxPlayerWidth, width/2)
	m.playerModel.SetWidth(playerWidth)
	m.tracklistModel.SetSize(width-playerWidth-2, height-2)
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return quitTextStyle.Render("До свидания!")
	}

	left := m.tracklistModel.View()
	if m.width > 0 {
		left = lipgloss.NewStyle().Width(m.width - min(maxPlayerWidth, m.width/2) - 2).Render(left)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.playerModel.View())
	return body + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() error {
	if m.audio != nil {
		return m.audio.Close()
	}
	return nil
}
