// Package musicplayer связывает каталог, фильтрацию и сессию воспроизведения
package musicplayer

import (
	"time"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/player"
	"github.com/hazadus/feelmusic/internal/session"
	"github.com/hazadus/feelmusic/internal/track"
)

// Controller принимает намерения пользователя и события аудио
type Controller struct {
	catalog *data.Catalog
	tracks  *track.Manager
	session *session.Session
}

// New создает контроллер и делает текущей первую песню каталога
func New(catalog *data.Catalog, s *session.Session) *Controller {
	c := &Controller{
		catalog: catalog,
		tracks:  track.NewManager(catalog),
		session: s,
	}
	if len(catalog.Songs) > 0 {
		c.selectSong(&catalog.Songs[0])
	}
	return c
}

// Catalog возвращает каталог
func (c *Controller) Catalog() *data.Catalog {
	return c.catalog
}

// Session возвращает сессию воспроизведения
func (c *Controller) Session() *session.Session {
	return c.session
}

// Songs возвращает отфильтрованный список
func (c *Controller) Songs() []data.Song {
	return c.tracks.ListTracks()
}

// Search возвращает строку поиска
func (c *Controller) Search() string {
	return c.tracks.Search()
}

// Tab возвращает активную вкладку
func (c *Controller) Tab() track.Tab {
	return c.tracks.Tab()
}

// SetSearch меняет строку поиска
func (c *Controller) SetSearch(search string) {
	c.tracks.SetSearch(search)
}

// SetTab меняет вкладку
func (c *Controller) SetTab(tab track.Tab) {
	c.tracks.SetTab(tab)
}

// Select делает песню текущей. Песни не из каталога игнорируются.
func (c *Controller) Select(id int) {
	song, err := c.catalog.SongByID(id)
	if err != nil {
		return
	}
	c.selectSong(song)
}

// Next переходит к следующей песне отфильтрованного списка
func (c *Controller) Next() {
	if song, ok := c.tracks.Next(c.session.Current()); ok {
		c.Select(song.ID)
	}
}

// Previous переходит к предыдущей песне отфильтрованного списка
func (c *Controller) Previous() {
	if song, ok := c.tracks.Previous(c.session.Current()); ok {
		c.Select(song.ID)
	}
}

// TogglePlay переключает воспроизведение
func (c *Controller) TogglePlay() {
	c.session.Toggle()
}

// Play включает воспроизведение
func (c *Controller) Play() {
	c.session.Play()
}

// Pause приостанавливает воспроизведение
func (c *Controller) Pause() {
	c.session.Pause()
}

// Seek переходит к позиции
func (c *Controller) Seek(t time.Duration) {
	c.session.Seek(t)
}

// SeekBy сдвигает позицию на delta
func (c *Controller) SeekBy(delta time.Duration) {
	c.session.Seek(c.session.CurrentTime() + delta)
}

// ToggleMute переключает звук
func (c *Controller) ToggleMute() {
	c.session.ToggleMute()
}

// CoverURL возвращает адрес обложки текущей песни
func (c *Controller) CoverURL() string {
	current := c.session.Current()
	if current == nil {
		return ""
	}
	return c.catalog.CoverURL(current.ID)
}

// HandleEvent применяет событие аудио; по окончании трека переходит к следующему
func (c *Controller) HandleEvent(ev player.Event) {
	if ended := c.session.HandleEvent(ev); ended {
		c.Next()
	}
}

func (c *Controller) selectSong(song *data.Song) {
	c.session.Select(song, c.catalog.SongURL(song.ID))
}
