// Package metadata предоставляет функционал для извлечения метаданных из аудио файлов
package metadata

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhowden/tag"
)

// ErrNoPicture возвращается, если в тегах нет обложки
var ErrNoPicture = errors.New("в тегах нет обложки")

// Picture обложка, встроенная в теги файла
type Picture struct {
	MIMEType string
	Data     []byte
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Picture возвращает обложку из тегов ID3/MP4/FLAC
func (e *Extractor) Picture(reader io.ReadSeeker) (*Picture, error) {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("ошибка перемотки: %w", err)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения тегов: %w", err)
	}

	p := m.Picture()
	if p == nil || len(p.Data) == 0 {
		return nil, ErrNoPicture
	}

	return &Picture{
		MIMEType: p.MIMEType,
		Data:     p.Data,
	}, nil
}
