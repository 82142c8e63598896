// Package streaming открывает аудио и обложки по сетевому адресу или локальному пути
package streaming

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Reader хранит загруженные данные и поддерживает Seek,
// который нужен декодеру MP3 для определения длительности
type Reader struct {
	*bytes.Reader
}

// Close реализует io.Closer
func (r *Reader) Close() error {
	return nil
}

// NewHTTPClient создает HTTP клиент для потокового чтения без общего таймаута
func NewHTTPClient() *http.Client {
	return &http.Client{
		// Убираем общий таймаут, оставляем только таймауты соединения
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       300 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Opener открывает источники двух видов: http(s) адреса сервера
// и локальные пути вида /mock_data/..., которые ищутся внутри StaticDir
type Opener struct {
	Client    *http.Client
	StaticDir string
}

// NewOpener создает новый Opener
func NewOpener(client *http.Client, staticDir string) *Opener {
	if client == nil {
		client = NewHTTPClient()
	}
	return &Opener{
		Client:    client,
		StaticDir: staticDir,
	}
}

// IsRemote сообщает, является ли источник сетевым адресом
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Open открывает источник для чтения
func (o *Opener) Open(ctx context.Context, src string) (io.ReadSeekCloser, error) {
	if src == "" {
		return nil, fmt.Errorf("пустой адрес источника")
	}
	if IsRemote(src) {
		return o.openRemote(ctx, src)
	}
	return o.openLocal(src)
}

// LocalPath возвращает путь к локальному файлу для адреса вида /mock_data/...
func (o *Opener) LocalPath(src string) string {
	rel := filepath.FromSlash(strings.TrimPrefix(src, "/"))
	return filepath.Join(o.StaticDir, rel)
}

func (o *Opener) openLocal(src string) (io.ReadSeekCloser, error) {
	file, err := os.Open(o.LocalPath(src))
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	return file, nil
}

func (o *Opener) openRemote(ctx context.Context, src string) (io.ReadSeekCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept-Encoding", "identity") // Отключаем сжатие для потока
	req.Header.Set("User-Agent", "feelmusic/1.0")

	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	return &Reader{Reader: bytes.NewReader(body)}, nil
}
