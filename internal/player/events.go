package player

import "time"

// EventType определяет тип события аудио
type EventType int

// Типы событий аудио
const (
	// EventTimeUpdate периодически сообщает текущую позицию
	EventTimeUpdate EventType = iota
	// EventLoadedMetadata сообщает длительность после загрузки
	EventLoadedMetadata
	// EventCanPlay сообщает, что данных достаточно для начала воспроизведения
	EventCanPlay
	// EventEnded сообщает о естественном завершении трека
	EventEnded
	// EventError сообщает об ошибке загрузки или декодирования
	EventError
)

func (t EventType) String() string {
	switch t {
	case EventTimeUpdate:
		return "timeupdate"
	case EventLoadedMetadata:
		return "loadedmetadata"
	case EventCanPlay:
		return "canplay"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event событие аудио. Source указывает источник, к которому событие относится.
type Event struct {
	Type     EventType
	Source   string
	Time     time.Duration // Для EventTimeUpdate
	Duration time.Duration // Для EventLoadedMetadata
	Err      error         // Для EventError
}
