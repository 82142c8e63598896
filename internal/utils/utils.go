// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// FormatDuration форматирует time.Duration в формат MM:SS или HH:MM:SS.
// Отрицательная длительность означает, что она неизвестна.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "--:--"
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// TruncateString обрезает строку до указанной ширины в колонках терминала,
// добавляя "..." если строка шире
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight дополняет строку пробелами до указанной ширины в колонках терминала
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
