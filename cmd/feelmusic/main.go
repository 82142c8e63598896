package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/feelmusic/internal/config"
	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/streaming"
)

const (
	defaultConfigPath = "~/.feelmusic"
)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config  *config.Config
	Catalog *data.Catalog
	Opener  *streaming.Opener
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{}
	err := app.createRootCommand(ctx).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
