// Package session содержит состояние воспроизведения и его синхронизацию с аудио
package session

import (
	"log"
	"time"

	"github.com/hazadus/feelmusic/internal/data"
	"github.com/hazadus/feelmusic/internal/player"
)

// UnknownDuration означает, что длительность еще не известна
const UnknownDuration time.Duration = -1

// Audio аудио примитив, которым владеет сессия
type Audio interface {
	Load(src string)
	Play() error
	Pause()
	Seek(d time.Duration) error
	SetMuted(muted bool)
	Source() string
}

// State состояние загрузки текущего трека
type State int

// Состояния сессии
const (
	// Idle - песня не выбрана
	Idle State = iota
	// Loaded - источник подключен, длительность неизвестна
	Loaded
	// Ready - длительность известна
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loaded:
		return "Loaded"
	case Ready:
		return "Ready"
	default:
		return "Unknown"
	}
}

// Session хранит текущую песню и состояние воспроизведения.
// Методы вызываются из одного цикла обработки событий.
type Session struct {
	audio Audio

	current     *data.Song // Ссылка на элемент каталога
	source      string
	state       State
	playing     bool
	muted       bool
	currentTime time.Duration
	duration    time.Duration

	ready *readyWaiter
}

// New создает новую сессию
func New(audio Audio) *Session {
	return &Session{
		audio:    audio,
		state:    Idle,
		duration: UnknownDuration,
	}
}

// Current возвращает текущую песню или nil
func (s *Session) Current() *data.Song {
	return s.current
}

// Source возвращает подключенный источник
func (s *Session) Source() string {
	return s.source
}

// State возвращает состояние загрузки
func (s *Session) State() State {
	return s.state
}

// Playing возвращает флаг воспроизведения
func (s *Session) Playing() bool {
	return s.playing
}

// Muted возвращает флаг отключения звука
func (s *Session) Muted() bool {
	return s.muted
}

// CurrentTime возвращает текущую позицию
func (s *Session) CurrentTime() time.Duration {
	return s.currentTime
}

// Duration возвращает длительность или UnknownDuration
func (s *Session) Duration() time.Duration {
	return s.duration
}

// Progress возвращает долю прослушанного от 0 до 1
func (s *Session) Progress() float64 {
	if s.duration <= 0 {
		return 0
	}
	return float64(s.currentTime) / float64(s.duration)
}

// Select делает песню текущей и подключает ее источник
func (s *Session) Select(song *data.Song, src string) {
	if song == nil {
		return
	}
	if s.current != nil && s.current.ID == song.ID {
		return
	}
	s.current = song

	// Повторная загрузка того же источника не нужна
	if src != s.audio.Source() {
		s.audio.Load(src)
		s.source = src
		s.currentTime = 0
		s.duration = UnknownDuration
		s.state = Loaded
	}

	s.ready = nil
	if s.playing {
		s.ready = newReadyWaiter(s.source, s.issuePlay)
	}
}

// Play включает воспроизведение. Ошибка только записывается в лог,
// флаг воспроизведения остается включенным.
func (s *Session) Play() {
	s.playing = true
	s.issuePlay()
}

// Pause приостанавливает воспроизведение
func (s *Session) Pause() {
	s.playing = false
	s.ready = nil
	s.audio.Pause()
}

// Toggle переключает воспроизведение и паузу
func (s *Session) Toggle() {
	if s.playing {
		s.Pause()
		return
	}
	s.Play()
}

// Seek переходит к позиции t и сразу отображает ее
func (s *Session) Seek(t time.Duration) {
	if s.current == nil {
		return
	}
	t = s.clamp(t)
	if err := s.audio.Seek(t); err != nil {
		log.Printf("Ошибка перемотки: %v", err)
	}
	s.currentTime = t
}

// ToggleMute переключает звук
func (s *Session) ToggleMute() {
	s.muted = !s.muted
	s.audio.SetMuted(s.muted)
}

// HandleEvent применяет событие аудио. Возвращает true, если трек
// закончился и нужно перейти к следующему.
func (s *Session) HandleEvent(ev player.Event) bool {
	if ev.Source != s.source {
		return false
	}

	switch ev.Type {
	case player.EventTimeUpdate:
		s.currentTime = s.clamp(ev.Time)

	case player.EventLoadedMetadata:
		s.duration = ev.Duration
		s.state = Ready
		s.currentTime = s.clamp(s.currentTime)

	case player.EventCanPlay:
		if s.ready != nil && s.ready.fire(ev.Source) {
			s.ready = nil
		}

	case player.EventEnded:
		return true

	case player.EventError:
		log.Printf("Ошибка загрузки %s: %v", ev.Source, ev.Err)
	}

	return false
}

func (s *Session) issuePlay() {
	if err := s.audio.Play(); err != nil {
		log.Printf("Ошибка воспроизведения: %v", err)
	}
}

// clamp ограничивает позицию отрезком [0, duration].
// Пока длительность неизвестна, ограничение только снизу.
func (s *Session) clamp(t time.Duration) time.Duration {
	if t < 0 {
		t = 0
	}
	if s.duration != UnknownDuration && t > s.duration {
		t = s.duration
	}
	return t
}
