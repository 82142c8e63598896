package tui

import (
	"testing"
	"time"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/streaming"
)

func TestNewApp(t *testing.T) {
	catalog := data.NewMockCatalog()
	opener := streaming.NewOpener(streaming.NewHTTPClient(), t.TempDir())

	tuiApp := NewApp(catalog, opener, 5*time.Second)

	if tuiApp.catalog != catalog {
		t.Error("Приложение должно использовать переданный каталог")
	}
	if tuiApp.opener == nil {
		t.Error("Ожидался источник данных")
	}
	if tuiApp.seekStep != 5*time.Second {
		t.Errorf("Ожидался шаг перемотки 5s, получено %v", tuiApp.seekStep)
	}
}
