package metadata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// id3WithPicture собирает минимальный тег ID3v2.3 с одним кадром APIC
func id3WithPicture(mimeType string, picture []byte) []byte {
	var frame bytes.Buffer
	frame.WriteByte(0x00) // ISO-8859-1
	frame.WriteString(mimeType)
	frame.WriteByte(0x00)
	frame.WriteByte(0x03) // Front cover
	frame.WriteByte(0x00) // Пустое описание
	frame.Write(picture)

	var frames bytes.Buffer
	frames.WriteString("APIC")
	binary.Write(&frames, binary.BigEndian, uint32(frame.Len()))
	frames.Write([]byte{0x00, 0x00})
	frames.Write(frame.Bytes())

	size := frames.Len()
	var tag bytes.Buffer
	tag.WriteString("ID3")
	tag.Write([]byte{0x03, 0x00, 0x00})
	tag.Write([]byte{
		byte(size>>21) & 0x7f,
		byte(size>>14) & 0x7f,
		byte(size>>7) & 0x7f,
		byte(size) & 0x7f,
	})
	tag.Write(frames.Bytes())
	return tag.Bytes()
}

func TestPicture(t *testing.T) {
	content := id3WithPicture("image/png", []byte("picture-bytes"))

	picture, err := NewExtractor().Picture(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("Ошибка извлечения обложки: %v", err)
	}
	if picture.MIMEType != "image/png" {
		t.Errorf("Ожидался MIME image/png, получено %s", picture.MIMEType)
	}
	if string(picture.Data) != "picture-bytes" {
		t.Errorf("Неожиданные данные обложки: %q", picture.Data)
	}
}

func TestPictureFromCorruptedFile(t *testing.T) {
	corrupted := []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD}

	if _, err := NewExtractor().Picture(bytes.NewReader(corrupted)); err == nil {
		t.Error("Ожидалась ошибка для файла без тегов")
	}
}

func TestPictureMissing(t *testing.T) {
	// Тег без кадров: только заголовок
	content := []byte{'I', 'D', '3', 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

	_, err := NewExtractor().Picture(bytes.NewReader(content))
	if err == nil {
		t.Fatal("Ожидалась ошибка для тега без обложки")
	}
	if !errors.Is(err, ErrNoPicture) && !bytes.Contains([]byte(err.Error()), []byte("ошибка чтения тегов")) {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}
