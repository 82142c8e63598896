// Package player содержит аудио примитив на основе beep
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// ErrNoSource возвращается при попытке воспроизведения без источника
var ErrNoSource = errors.New("источник не задан")

// Интервал отправки EventTimeUpdate
const timeUpdateInterval = 250 * time.Millisecond

// Opener открывает источник аудио по адресу
type Opener interface {
	Open(ctx context.Context, src string) (io.ReadSeekCloser, error)
}

// loadedTrack объединяет ресурсы одного загруженного трека
type loadedTrack struct {
	reader   io.ReadSeekCloser
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	ended    bool
}

func (t *loadedTrack) close() {
	if t.streamer != nil {
		t.streamer.Close()
	}
	if t.reader != nil {
		t.reader.Close()
	}
}

// Player управляет воспроизведением одного источника за раз.
// Все изменения состояния наружу передаются только через Events.
type Player struct {
	opener Opener
	events chan Event

	ctx    context.Context
	cancel context.CancelFunc
	mutex  sync.Mutex

	isInitialized bool
	sampleRate    beep.SampleRate

	source     string
	generation int
	track      *loadedTrack
	loadErr    error
	wantPlay   bool // Play вызван до окончания загрузки
	muted      bool
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer(opener Opener) *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		opener: opener,
		events: make(chan Event, 16),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Events возвращает канал событий плеера
func (p *Player) Events() <-chan Event {
	return p.events
}

// Done закрывается после Close
func (p *Player) Done() <-chan struct{} {
	return p.ctx.Done()
}

// Source возвращает подключенный источник
func (p *Player) Source() string {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return p.source
}

// Load подключает новый источник. Текущий трек останавливается,
// загрузка и декодирование выполняются в фоне.
func (p *Player) Load(src string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.stopInternal()
	p.source = src
	p.generation++
	p.loadErr = nil
	p.wantPlay = false

	go p.load(p.generation, src)
}

// Play запускает воспроизведение. Если трек еще загружается,
// воспроизведение начнется после загрузки.
func (p *Player) Play() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.source == "" {
		return ErrNoSource
	}
	if p.loadErr != nil {
		return fmt.Errorf("источник не загружен: %w", p.loadErr)
	}
	if p.track == nil {
		p.wantPlay = true
		return nil
	}

	if p.track.ended {
		// После завершения трек начинается заново
		speaker.Lock()
		err := p.track.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			return fmt.Errorf("ошибка перемотки: %w", err)
		}
		p.track.ended = false
		p.track.ctrl.Paused = false
		p.startInternal(p.generation)
		return nil
	}

	speaker.Lock()
	p.track.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

// Pause приостанавливает воспроизведение
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.wantPlay = false
	if p.track != nil {
		speaker.Lock()
		p.track.ctrl.Paused = true
		speaker.Unlock()
	}
}

// Seek переходит к указанной позиции
func (p *Player) Seek(d time.Duration) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.track == nil {
		return ErrNoSource
	}

	speaker.Lock()
	defer speaker.Unlock()

	pos := p.track.format.SampleRate.N(d)
	if pos < 0 {
		pos = 0
	}
	if n := p.track.streamer.Len(); n > 0 && pos >= n {
		pos = n - 1
	}
	if err := p.track.streamer.Seek(pos); err != nil {
		return fmt.Errorf("ошибка перемотки: %w", err)
	}
	return nil
}

// SetMuted включает или выключает звук
func (p *Player) SetMuted(muted bool) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.muted = muted
	if p.track != nil {
		speaker.Lock()
		p.track.volume.Silent = muted
		speaker.Unlock()
	}
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.track == nil || p.track.ended {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.track.ctrl.Paused
}

// Close останавливает воспроизведение и освобождает ресурсы
func (p *Player) Close() error {
	p.cancel()

	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
	p.generation++
	return nil
}

// stopInternal должен вызываться под мьютексом
func (p *Player) stopInternal() {
	if p.track != nil {
		if p.isInitialized {
			speaker.Clear()
		}
		p.track.close()
		p.track = nil
	}
}

// load открывает и декодирует источник
func (p *Player) load(generation int, src string) {
	reader, err := p.opener.Open(p.ctx, src)
	if err != nil {
		p.failLoad(generation, src, fmt.Errorf("ошибка открытия источника: %w", err))
		return
	}

	streamer, format, err := mp3.Decode(reader)
	if err != nil {
		reader.Close()
		p.failLoad(generation, src, fmt.Errorf("ошибка декодирования MP3: %w", err))
		return
	}

	p.mutex.Lock()

	// Пока шла загрузка, источник сменился
	if generation != p.generation {
		p.mutex.Unlock()
		streamer.Close()
		reader.Close()
		return
	}

	// Инициализируем speaker (только один раз)
	if !p.isInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/5)); err != nil {
			p.mutex.Unlock()
			streamer.Close()
			reader.Close()
			p.failLoad(generation, src, fmt.Errorf("ошибка инициализации динамиков: %w", err))
			return
		}
		p.isInitialized = true
		p.sampleRate = format.SampleRate
	}

	var source beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	ctrl := &beep.Ctrl{Streamer: source, Paused: !p.wantPlay}
	p.track = &loadedTrack{
		reader:   reader,
		streamer: streamer,
		format:   format,
		ctrl:     ctrl,
		volume:   &effects.Volume{Streamer: ctrl, Base: 2, Silent: p.muted},
	}
	p.wantPlay = false
	p.startInternal(generation)

	duration := format.SampleRate.D(streamer.Len())
	p.mutex.Unlock()

	p.emit(Event{Type: EventLoadedMetadata, Source: src, Duration: duration})
	p.emit(Event{Type: EventCanPlay, Source: src})
}

// startInternal передает трек в speaker и запускает мониторинг позиции.
// Должен вызываться под мьютексом.
func (p *Player) startInternal(generation int) {
	src := p.source
	speaker.Play(beep.Seq(p.track.volume, beep.Callback(func() {
		// Callback выполняется под блокировкой speaker
		go p.finished(generation, src)
	})))
	go p.monitorProgress(generation, src)
}

func (p *Player) failLoad(generation int, src string, err error) {
	p.mutex.Lock()
	if generation != p.generation {
		p.mutex.Unlock()
		return
	}
	p.loadErr = err
	p.mutex.Unlock()

	p.emit(Event{Type: EventError, Source: src, Err: err})
}

func (p *Player) finished(generation int, src string) {
	p.mutex.Lock()
	if generation != p.generation || p.track == nil {
		p.mutex.Unlock()
		return
	}
	p.track.ended = true
	p.mutex.Unlock()

	p.emit(Event{Type: EventEnded, Source: src})
}

// monitorProgress отправляет EventTimeUpdate, пока трек воспроизводится
func (p *Player) monitorProgress(generation int, src string) {
	ticker := time.NewTicker(timeUpdateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mutex.Lock()
			if generation != p.generation || p.track == nil || p.track.ended {
				p.mutex.Unlock()
				return
			}

			speaker.Lock()
			paused := p.track.ctrl.Paused
			current := p.track.format.SampleRate.D(p.track.streamer.Position())
			speaker.Unlock()
			p.mutex.Unlock()

			if paused {
				continue
			}

			// Если канал заполнен, обновление пропускается
			select {
			case p.events <- Event{Type: EventTimeUpdate, Source: src, Time: current}:
			default:
			}
		}
	}
}

func (p *Player) emit(ev Event) {
	select {
	case p.events <- ev:
	case <-p.ctx.Done():
	}
}
