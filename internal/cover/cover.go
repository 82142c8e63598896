// Package cover загружает обложки и рисует их символами в терминале
package cover

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // Обложки сервера и тестового набора в JPEG
	_ "image/png"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/feelmusic/internal/metadata"
)

// Opener открывает источник по адресу
type Opener interface {
	Open(ctx context.Context, src string) (io.ReadSeekCloser, error)
}

// Loader загружает обложку, а при ошибке берет картинку из тегов аудио
type Loader struct {
	opener    Opener
	extractor *metadata.Extractor
}

// NewLoader создает новый Loader
func NewLoader(opener Opener) *Loader {
	return &Loader{
		opener:    opener,
		extractor: metadata.NewExtractor(),
	}
}

// Load загружает и декодирует обложку
func (l *Loader) Load(ctx context.Context, coverSrc, audioSrc string) (image.Image, error) {
	img, err := l.loadImage(ctx, coverSrc)
	if err == nil {
		return img, nil
	}

	embedded, embeddedErr := l.loadEmbedded(ctx, audioSrc)
	if embeddedErr != nil {
		return nil, fmt.Errorf("ошибка загрузки обложки: %w (теги: %v)", err, embeddedErr)
	}
	return embedded, nil
}

func (l *Loader) loadImage(ctx context.Context, src string) (image.Image, error) {
	reader, err := l.opener.Open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования изображения: %w", err)
	}
	return img, nil
}

func (l *Loader) loadEmbedded(ctx context.Context, audioSrc string) (image.Image, error) {
	if audioSrc == "" {
		return nil, fmt.Errorf("нет адреса аудио")
	}
	reader, err := l.opener.Open(ctx, audioSrc)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	picture, err := l.extractor.Picture(reader)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(picture.Data))
	if err != nil {
		return nil, fmt.Errorf("ошибка декодирования изображения: %w", err)
	}
	return img, nil
}

// Render рисует изображение шириной width символов.
// Каждый символ "▀" кодирует два пикселя по вертикали.
func Render(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	// Пикселей по вертикали вдвое больше, чем строк
	pixelRows := width * bounds.Dy() / bounds.Dx()
	if pixelRows < 2 {
		pixelRows = 2
	}
	rows := pixelRows / 2

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < width; col++ {
			top := sample(img, col, row*2, width, pixelRows)
			bottom := sample(img, col, row*2+1, width, pixelRows)
			b.WriteString(lipgloss.NewStyle().
				Foreground(top).
				Background(bottom).
				Render("▀"))
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// sample берет цвет ближайшего пикселя для клетки (x, y) сетки w×h
func sample(img image.Image, x, y, w, h int) lipgloss.Color {
	bounds := img.Bounds()
	px := bounds.Min.X + x*bounds.Dx()/w
	py := bounds.Min.Y + y*bounds.Dy()/h
	r, g, b, _ := img.At(px, py).RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}
