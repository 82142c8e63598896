package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/feelmusic/internal/tui"
)

func (app *Application) launchTUI(ctx context.Context) error {
	// Лог пишем в файл, чтобы не портить экран TUI
	logFile, err := tea.LogToFile(app.Config.LogFile, "feelmusic")
	if err != nil {
		return fmt.Errorf("ошибка открытия файла лога: %w", err)
	}
	defer logFile.Close()

	app.loadCatalog(ctx)

	tuiApp := tui.NewApp(app.Catalog, app.Opener, app.Config.SeekStep)
	if err := tuiApp.Run(); err != nil {
		return fmt.Errorf("ошибка работы TUI: %w", err)
	}
	return nil
}
