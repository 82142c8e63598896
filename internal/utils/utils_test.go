package utils

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{60 * time.Second, "01:00"},
		{3*time.Minute + 27*time.Second + 900*time.Millisecond, "03:27"},
		{61*time.Minute + 1*time.Second, "01:01:01"},
		{25*time.Hour + 45*time.Minute + 30*time.Second, "25:45:30"},
		{-1, "--:--"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s; expected %s", test.duration, result, test.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10", 10, "exactly10"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"Песня о любви", 8, "Песня..."},
		{"日本語の歌", 7, "日本..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"abcdef", 5, "ab..."},
		{"日本", 6, "日本  "},
	}

	for _, test := range tests {
		result := PadRight(test.input, test.width)
		if result != test.expected {
			t.Errorf("PadRight(%s, %d) = %q; expected %q", test.input, test.width, result, test.expected)
		}
	}
}
