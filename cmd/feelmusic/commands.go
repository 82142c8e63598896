package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/feelmusic/internal/catalog"
	"github.com/hazadus/feelmusic/internal/config"
	"github.com/hazadus/feelmusic/internal/streaming"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "feelmusic",
		Short:        "Terminal music player with search and top tracks",
		Long:         `Browse the song catalog, search by name or artist and play songs in an interactive terminal user interface.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.loadConfig(configPath)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the config file")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createListCommand(ctx))

	return rootCmd
}

// loadConfig загружает конфигурацию и создает источник данных
func (app *Application) loadConfig(configPath string) error {
	if app.Config == nil {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
		}
		app.Config = cfg
	}

	if app.Opener == nil {
		app.Opener = streaming.NewOpener(streaming.NewHTTPClient(), app.Config.StaticDir)
	}
	return nil
}

// loadCatalog загружает каталог один раз за запуск
func (app *Application) loadCatalog(ctx context.Context) {
	if app.Catalog != nil {
		return
	}
	client := catalog.NewClient(app.Config.ServerBaseURL, streaming.NewHTTPClient())
	app.Catalog = catalog.Load(ctx, client, app.Config.ServerBaseURL)
}
