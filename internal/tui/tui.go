// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/feelmusic/internal/cover"
	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/player"
	"github.com/hazadus/feelmusic/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	catalog  *data.Catalog
	opener   player.Opener
	seekStep time.Duration
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(catalog *data.Catalog, opener player.Opener, seekStep time.Duration) *App {
	return &App{
		catalog:  catalog,
		opener:   opener,
		seekStep: seekStep,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := app.NewMainModel(
		tuiApp.catalog,
		player.NewPlayer(tuiApp.opener),
		cover.NewLoader(tuiApp.opener),
		tuiApp.seekStep,
	)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	// Закрываем плеер после завершения программы
	model.Close()

	return err
}
