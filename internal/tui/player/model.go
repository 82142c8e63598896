// Package player содержит панель воспроизведения для TUI
package player

import (
	"context"
	"fmt"
	"image"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/feelmusic/internal/cover"
	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/musicplayer"
	"github.com/hazadus/feelmusic/internal/player"
	"github.com/hazadus/feelmusic/internal/session"
	"github.com/hazadus/feelmusic/internal/utils"
)

const (
	defaultWidth = 40
	coverWidth   = 24
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true)

	artistStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#444444")).
				Width(coverWidth).
				Height(coverWidth / 2).
				Align(lipgloss.Center, lipgloss.Center)
)

// EventSource источник событий аудио
type EventSource interface {
	Events() <-chan player.Event
	Done() <-chan struct{}
}

// CoverLoader загружает обложку песни
type CoverLoader interface {
	Load(ctx context.Context, coverSrc, audioSrc string) (image.Image, error)
}

// EventMsg содержит событие аудио
type EventMsg struct {
	Event player.Event
}

// ClosedMsg отправляется, когда аудио закрыто и событий больше не будет
type ClosedMsg struct{}

// CoverLoadedMsg содержит загруженную обложку песни
type CoverLoadedMsg struct {
	SongID int
	Image  image.Image
	Err    error
}

// Model панель воспроизведения текущей песни
type Model struct {
	controller *musicplayer.Controller
	events     EventSource
	covers     CoverLoader

	progressBar progress.Model
	coverSongID int
	coverView   string
	width       int
}

// NewModel создает новую панель воспроизведения
func NewModel(controller *musicplayer.Controller, events EventSource, covers CoverLoader) *Model {
	m := &Model{
		controller:  controller,
		events:      events,
		covers:      covers,
		progressBar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.SetWidth(defaultWidth)
	return m
}

// Init подписывается на события аудио и загружает первую обложку
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForEvents(m.events),
		m.SyncCover(),
	)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return m, nil

	case EventMsg:
		m.controller.HandleEvent(msg.Event)
		return m, tea.Batch(
			ListenForEvents(m.events),
			m.SyncCover(),
		)

	case ClosedMsg:
		return m, nil

	case CoverLoadedMsg:
		if msg.SongID != m.coverSongID {
			return m, nil
		}
		if msg.Err != nil {
			log.Printf("Обложка песни %d недоступна: %v", msg.SongID, msg.Err)
			m.coverView = ""
			return m, nil
		}
		m.coverView = cover.Render(msg.Image, coverWidth)
		return m, nil
	}

	return m, m.SyncCover()
}

// SetWidth задает ширину панели
func (m *Model) SetWidth(width int) {
	m.width = width
	m.progressBar.Width = max(10, min(60, width-8))
}

// View отображает панель. Без текущей песни панель пуста.
func (m *Model) View() string {
	s := m.controller.Session()
	song := s.Current()
	if song == nil {
		return ""
	}

	accent := accentColor(song)

	var b strings.Builder
	if m.coverView != "" {
		b.WriteString(m.coverView)
	} else {
		b.WriteString(placeholderStyle.Render("♪"))
	}
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Foreground(accent).Render(song.Name))
	b.WriteString("\n")
	b.WriteString(artistStyle.Render(song.Artist))
	b.WriteString("\n")
	b.WriteString(m.progressBar.ViewAs(s.Progress()))
	b.WriteString("\n")
	b.WriteString(timeStyle.Render(fmt.Sprintf(
		"%s / %s",
		utils.FormatDuration(s.CurrentTime()),
		utils.FormatDuration(s.Duration()),
	)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(formatStatus(s)))

	return panelStyle.
		BorderForeground(accent).
		Width(m.width).
		Render(b.String())
}

// SyncCover запускает загрузку обложки, если текущая песня сменилась
func (m *Model) SyncCover() tea.Cmd {
	song := m.controller.Session().Current()
	if song == nil || song.ID == m.coverSongID {
		return nil
	}
	m.coverSongID = song.ID
	m.coverView = ""

	if m.covers == nil {
		return nil
	}
	return loadCover(m.covers, song.ID, m.controller.CoverURL(), m.controller.Session().Source())
}

// ListenForEvents ждет следующее событие аудио
func ListenForEvents(source EventSource) tea.Cmd {
	if source == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev, ok := <-source.Events():
			if !ok {
				return ClosedMsg{}
			}
			return EventMsg{Event: ev}
		case <-source.Done():
			return ClosedMsg{}
		}
	}
}

func loadCover(loader CoverLoader, songID int, coverSrc, audioSrc string) tea.Cmd {
	return func() tea.Msg {
		img, err := loader.Load(context.Background(), coverSrc, audioSrc)
		return CoverLoadedMsg{SongID: songID, Image: img, Err: err}
	}
}

// Вспомогательные функции

func accentColor(song *data.Song) lipgloss.TerminalColor {
	if song.Accent == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(song.Accent)
}

func formatStatus(s *session.Session) string {
	var status string
	if s.Playing() {
		status = "▶ Воспроизведение"
	} else {
		status = "⏸ Пауза"
	}
	if s.Muted() {
		status += "  🔇 Без звука"
	}
	return status
}
