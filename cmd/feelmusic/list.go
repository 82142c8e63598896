package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/feelmusic/internal/track"
	"github.com/hazadus/feelmusic/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand(ctx context.Context) *cobra.Command {
	var search, tabName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List songs from the catalog",
		Long:  `Display songs from the catalog filtered by search text and tab.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tab, err := track.ParseTab(tabName)
			if err != nil {
				return err
			}
			app.loadCatalog(ctx)
			app.listSongs(cmd, search, tab)
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter songs by name or artist")
	cmd.Flags().StringVarP(&tabName, "tab", "t", "for-you", "tab to list: for-you or top")

	return cmd
}

func (app *Application) listSongs(cmd *cobra.Command, search string, tab track.Tab) {
	out := cmd.OutOrStdout()

	if app.Catalog.IsMockData {
		fmt.Fprintln(out, "⚠️  Сервер недоступен, показан тестовый набор песен")
	}

	manager := track.NewManager(app.Catalog)
	manager.SetTab(tab)
	manager.SetSearch(search)
	songs := manager.ListTracks()

	if len(songs) == 0 {
		fmt.Fprintf(out, "🔍 Ничего не найдено во вкладке %s\n", tab)
		return
	}

	fmt.Fprintf(out, "🎵 %s: %d песен\n\n", tab, len(songs))

	// Выводим заголовок таблицы
	fmt.Fprintf(out, "%-4s %s %s %s\n",
		"ID", utils.PadRight("Исполнитель", 30), utils.PadRight("Название", 30), "Top")
	fmt.Fprintln(out, strings.Repeat("-", 72))

	for _, song := range songs {
		top := ""
		if song.TopTrack {
			top = "★"
		}
		fmt.Fprintf(out, "%-4d %s %s %s\n",
			song.ID, utils.PadRight(song.Artist, 30), utils.PadRight(song.Name, 30), top)
	}
}
